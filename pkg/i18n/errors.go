package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON translations")
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrInvalidStructure  = errors.New("translations must be keyed by language")

	ErrFailedToReadDirectory = errors.New("failed to read translations directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrNoTranslations        = errors.New("no translations found")
	ErrEmptyLanguage         = errors.New("empty language code")
)
