package i18n

import "errors"

var (
	ErrNilAdapter             = errors.New("i18n: adapter is nil")
	ErrDefaultLanguageMissing = errors.New("i18n: no translations for default language")
	ErrNoTranslations         = errors.New("i18n: no translations found")
	ErrInvalidStructure       = errors.New("i18n: invalid translation structure")
	ErrFailedToParseYAML      = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON      = errors.New("i18n: failed to parse JSON content")
	ErrFailedToReadDirectory  = errors.New("i18n: failed to read directory")
	ErrFailedToReadFile       = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile      = errors.New("i18n: failed to parse translation file")
)
