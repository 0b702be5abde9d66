package validator

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"pleadmd/internal/domain"
)

// DefaultMaxFileSize is the upload ceiling used when none is configured (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// FileTooLargeError reports an upload above the size ceiling.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("File size exceeds the maximum limit of %s", FormatFileSize(e.Limit))
}

// Is lets callers match the error with errors.Is(err, domain.ErrFileTooLarge).
func (e *FileTooLargeError) Is(target error) bool {
	return target == domain.ErrFileTooLarge
}

// ValidateFile checks the size ceiling first, then the type. A file passes the
// type check when either its MIME type or its lower-cased extension is supported;
// browsers and operating systems disagree too often to require both.
func ValidateFile(mimeType, name string, size, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileSize
	}
	if size > maxBytes {
		return &FileTooLargeError{Size: size, Limit: maxBytes}
	}
	if ResolveFileType(mimeType, name) == "" {
		return domain.ErrUnsupportedFileType
	}
	return nil
}

// ResolveFileType maps a MIME type, falling back to the file extension, to a
// supported FileType. It returns "" when neither matches.
func ResolveFileType(mimeType, name string) domain.FileType {
	if ft, ok := domain.AllowedContentTypes[normalizeMIME(mimeType)]; ok {
		return ft
	}
	if ft, ok := domain.AllowedExtensions[Extension(name)]; ok {
		return ft
	}
	return ""
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsGenericMIME reports whether a declared MIME type carries no format information.
func IsGenericMIME(mimeType string) bool {
	m := normalizeMIME(mimeType)
	return m == "" || m == "application/octet-stream"
}

// SniffMIMEType detects the content type from the head of r and rewinds it.
func SniffMIMEType(r io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detecting content type: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking file: %w", err)
	}
	return normalizeMIME(mtype.String()), nil
}

func normalizeMIME(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
