package prompt

import (
	"fmt"
	"strings"

	"pleadmd/internal/domain"
)

const conversionHeader = `You are an expert legal document formatter. Convert the following legal pleading into well-structured Markdown.

Requirements:
1. Preserve the complete document hierarchy (caption, title, sections, subsections).
2. Convert numbered paragraphs into a Markdown numbered list, keeping the original numbering.
3. Format legal citations consistently and keep them verbatim.
4. Use a level 1 heading (#) for the document title.
5. Use level 2 headings (##) for major sections.
6. Use level 3 headings (###) for subsections.
7. Use numbered lists for numbered paragraphs and bullet lists for unnumbered enumerations.
8. Use bold for party names and case names.
9. Use italics for case citations and statutory references, and blockquotes (>) for quoted provisions.
10. Preserve the logical flow of the document; do not summarize, omit, or add content.`

const separator = "Document to convert:"

const closing = "Provide ONLY the converted Markdown, with no explanations, commentary, or code fences."

const cleaningInstruction = `You are cleaning text extracted from a PDF legal document. The extraction may contain layout noise.

Clean the text as follows:
- Remove running headers, footers, page numbers, watermarks, and OCR artifacts.
- Repair words broken across lines or by hyphenation.
- Preserve the legal structure, including captions, headings, paragraph numbering, and citations.
- Do not summarize, reword, or add content.

Return ONLY the cleaned document text, with no commentary or explanation.

Extracted text:
`

// BuildConversionPrompt assembles the markdown conversion prompt. A non-blank
// customPrompt replaces the default template entirely. Examples are rendered
// in the order given.
func BuildConversionPrompt(text, customPrompt string, examples []domain.ConversionExample) string {
	var b strings.Builder

	if custom := strings.TrimSpace(customPrompt); custom != "" {
		b.WriteString(custom)
	} else {
		b.WriteString(conversionHeader)
		if len(examples) > 0 {
			b.WriteString("\n\nExamples:")
			for i, ex := range examples {
				fmt.Fprintf(&b, "\n\nExample %d (%s):\nOriginal:\n%s\n\nMarkdown:\n%s",
					i+1, ex.PleadingType, ex.OriginalText, ex.MarkdownText)
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(separator)
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(closing)
	return b.String()
}

// BuildCleaningPrompt returns the PDF text-cleaning prompt with raw appended.
func BuildCleaningPrompt(raw string) string {
	return cleaningInstruction + raw
}
