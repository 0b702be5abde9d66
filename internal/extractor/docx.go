package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// WordprocessingML main namespace.
const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ExtractDOCX returns the raw text of a Word document, one entry per paragraph
// separated by a blank line. Tabs and breaks inside a paragraph are kept.
func ExtractDOCX(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("invalid DOCX file: %w", err)
	}

	body, err := readZipEntry(zr, docxBodyPart)
	if err != nil {
		return "", err
	}
	defer body.Close()

	paragraphs, err := collectParagraphs(xml.NewDecoder(body))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", docxBodyPart, err)
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func readZipEntry(zr *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", name, err)
			}
			return rc, nil
		}
	}
	return nil, fmt.Errorf("invalid DOCX file: %s not found in archive", name)
}

// collectParagraphs walks the document tokens. Deleted revisions and field
// instructions are skipped.
func collectParagraphs(dec *xml.Decoder) ([]string, error) {
	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			case "del", "instrText":
				if err := dec.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara {
					paragraphs = append(paragraphs, current.String())
				}
				inPara = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
