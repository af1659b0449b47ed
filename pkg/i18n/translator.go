package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/atnchile/portal/pkg/logger"
)

// DefaultLanguage is used when neither the request nor the configuration names one.
const DefaultLanguage = "es"

// Translator resolves dot-separated keys against per-language translation trees.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logger       *slog.Logger
	logMissing   bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested language or key is missing.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger sets the logger used for load and missing-key reports.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs every lookup that falls back.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, t.defaultLang)
	}
	t.translations = translations

	// The default language goes first so the matcher falls back to it.
	t.langs = []string{t.defaultLang}
	for lang := range translations {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.InfoContext(ctx, "translations loaded", logger.Component("i18n"), slog.Any("languages", t.langs))
	return t, nil
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Supports reports whether lang has translations.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.translations[strings.ToLower(lang)]
	return ok
}

// Match picks the supported language that best fits an Accept-Language
// header, e.g. "es-CL" matches "es". It returns the default language when
// nothing matches.
func (t *Translator) Match(acceptLanguage string) string {
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T translates key into lang, substituting %{name} placeholders from args
// given as name, value pairs:
//
//	t.T("es", "validation.max_length", "max", "500")
//
// Missing keys fall back to the default language and then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	lang = strings.ToLower(lang)
	if tmpl, ok := t.lookup(lang, key); ok {
		return substitute(tmpl, args)
	}
	if t.logMissing {
		t.logger.Warn("translation not found", logger.Component("i18n"), slog.String("lang", lang), slog.String("key", key))
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			return substitute(tmpl, args)
		}
	}
	return substitute(key, args)
}

// Tc translates key into the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx, t.defaultLang), key, args...)
}

// Has reports whether key is translated in lang without falling back.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(strings.ToLower(lang), key)
	return ok
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := node[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if node, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
