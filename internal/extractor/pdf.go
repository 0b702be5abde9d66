package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"pleadmd/internal/domain"
)

// ErrPDFNoText is returned when a PDF has no selectable text at all.
var ErrPDFNoText = errors.New("No text found in PDF. The document may be image-based or scanned without OCR. Please ensure the PDF contains selectable text.")

// ExtractPDF returns the text fragments of every page. Fragments within a
// page are trimmed, empty ones dropped, and the rest joined with a space;
// pages without text are skipped and the rest separated by a blank line.
func ExtractPDF(ctx context.Context, r io.Reader) (text string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ExtractionError{Format: domain.FileTypePDF, Err: fmt.Errorf("reading file: %w", err)}
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &ExtractionError{Format: domain.FileTypePDF, Err: fmt.Errorf("%v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: domain.FileTypePDF, Err: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := pageFragments(page)
		if err != nil {
			return "", &ExtractionError{Format: domain.FileTypePDF, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	text = strings.TrimSpace(strings.Join(pages, "\n\n"))
	if text == "" {
		return "", &ExtractionError{Format: domain.FileTypePDF, Err: ErrPDFNoText}
	}
	return text, nil
}

func pageFragments(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	var fragments []string
	for _, row := range rows {
		for _, word := range row.Content {
			if s := strings.TrimSpace(word.S); s != "" {
				fragments = append(fragments, s)
			}
		}
	}
	return strings.Join(fragments, " "), nil
}
