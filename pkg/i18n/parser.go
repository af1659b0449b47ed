package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file whose top-level keys are language codes.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
}

// NewParserForFile returns the parser for filename's extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		return YAMLParser{}
	case ".json":
		return JSONParser{}
	default:
		return nil
	}
}

// YAMLParser parses YAML translation files.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
}

// JSONParser parses JSON translation files.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
}

func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, want a map", ErrInvalidStructure, lang, val)
		}
		result[strings.ToLower(lang)] = tree
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
