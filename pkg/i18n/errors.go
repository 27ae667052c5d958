package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrInvalidTranslations  = errors.New("invalid translations")
	ErrLanguageNotSupported = errors.New("language not supported")

	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrFailedToReadDir  = errors.New("failed to read translation directory")
	ErrNoTranslations   = errors.New("no translation files found")
)
