package prompt_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pleadmd/internal/domain"
	"pleadmd/internal/prompt"
)

const defaultMarker = "You are an expert legal document formatter"

func TestBuildConversionPrompt_DefaultTemplate(t *testing.T) {
	p := prompt.BuildConversionPrompt("COMPLAINT FOR DAMAGES", "", nil)

	assert.True(t, strings.HasPrefix(p, defaultMarker))
	for i := 1; i <= 10; i++ {
		assert.Contains(t, p, "\n"+strconv.Itoa(i)+". ")
	}
	assert.NotContains(t, p, "Examples:")
	assert.Contains(t, p, "COMPLAINT FOR DAMAGES")
	assert.True(t, strings.HasSuffix(p, "no explanations, commentary, or code fences."))
}

func TestBuildConversionPrompt_CustomReplacesTemplate(t *testing.T) {
	examples := []domain.ConversionExample{{PleadingType: "Motion", OriginalText: "x", MarkdownText: "# x"}}

	p := prompt.BuildConversionPrompt("BODY", "  Use terse headings.  ", examples)

	assert.NotContains(t, p, defaultMarker)
	assert.NotContains(t, p, "Example 1")
	assert.True(t, strings.HasPrefix(p, "Use terse headings.\n\nDocument to convert:\n\nBODY"))
}

func TestBuildConversionPrompt_BlankCustomUsesDefault(t *testing.T) {
	p := prompt.BuildConversionPrompt("BODY", " \n\t", nil)

	assert.Contains(t, p, defaultMarker)
}

func TestBuildConversionPrompt_ExamplesInOrder(t *testing.T) {
	examples := []domain.ConversionExample{
		{PleadingType: "Complaint", OriginalText: "PLAINTIFF ALLEGES", MarkdownText: "# Complaint"},
		{PleadingType: "Answer", OriginalText: "DEFENDANT DENIES", MarkdownText: "# Answer"},
	}

	p := prompt.BuildConversionPrompt("BODY", "", examples)

	first := strings.Index(p, "Example 1 (Complaint):")
	second := strings.Index(p, "Example 2 (Answer):")
	doc := strings.Index(p, "Document to convert:")
	assert.Greater(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, doc, second)
	assert.Contains(t, p, "PLAINTIFF ALLEGES")
	assert.Contains(t, p, "# Answer")
}

func TestBuildCleaningPrompt(t *testing.T) {
	p := prompt.BuildCleaningPrompt("Page 1 of 3\nraw body")

	assert.Contains(t, p, "page numbers")
	assert.True(t, strings.HasSuffix(p, "Extracted text:\nPage 1 of 3\nraw body"))
}
