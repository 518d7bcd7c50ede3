package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrInvalidTranslations = errors.New("invalid translations")

	// Parsing
	ErrParsingCancelled   = errors.New("parsing cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrUnsupportedFormat  = errors.New("unsupported translation file format")
	ErrNoTranslationFound = errors.New("no translations found")

	// Files and directories
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrInvalidAdapterConfig = errors.New("invalid adapter configuration")
)
