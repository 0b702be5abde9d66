package domain

import "errors"

// Messages that users see verbatim keep sentence casing.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("Please upload a TXT, DOCX, or PDF file")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrPDFSettingsRequired = errors.New("PDF processing requires LLM settings for text cleaning")
	ErrNoTextToClean       = errors.New("No text content to clean")
	ErrExtractionFailed    = errors.New("text extraction failed")
	ErrExampleNotFound     = errors.New("example not found")
	ErrInvalidExample      = errors.New("example requires a name, original text and markdown text")
	ErrInvalidSettings     = errors.New("invalid conversion settings")
	ErrStoreUnavailable    = errors.New("settings store is unavailable")
	ErrUnknownStoreBackend = errors.New("unknown store backend")
)
