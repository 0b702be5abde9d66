package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pleadmd/internal/domain"
	"pleadmd/internal/extractor"
	"pleadmd/internal/service"
	"pleadmd/mocks"
)

// countingReader records whether anything read from it.
type countingReader struct {
	r     *strings.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func testSettings() *domain.ConversionSettings {
	return &domain.ConversionSettings{Provider: "openai", Model: "gpt-4o", APIKey: "sk", Temperature: 0.3, MaxTokens: 4000}
}

func newExtractionService(ex *mocks.MockTextExtractor, llm *mocks.MockLLMClient) service.ExtractionService {
	return service.NewExtractionService(ex, llm, 0, zerolog.Nop())
}

func TestExtractionService_Extract_PlainText(t *testing.T) {
	svc := service.NewExtractionService(extractor.New(), new(mocks.MockLLMClient), 0, zerolog.Nop())
	body := "IN THE SUPERIOR COURT\nCase No. 1"

	doc, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "complaint.txt", MIMEType: "text/plain", Size: int64(len(body)), Body: strings.NewReader(body),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, body, doc.Text)
	assert.Equal(t, domain.FileTypeTXT, doc.FileType)
	assert.Equal(t, "complaint.txt", doc.FileName)
	assert.False(t, doc.Cleaned)
	assert.False(t, doc.Degraded)
}

func TestExtractionService_Extract_OversizeNeverReads(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	llm := new(mocks.MockLLMClient)
	svc := newExtractionService(ex, llm)
	body := &countingReader{r: strings.NewReader("data")}

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "huge.pdf", MIMEType: "application/pdf", Size: 10*1024*1024 + 1, Body: body,
	}, testSettings())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
	assert.Equal(t, "File size exceeds the maximum limit of 10 MB", err.Error())
	assert.Equal(t, 0, body.reads)
	ex.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
	llm.AssertNotCalled(t, "ProcessText", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_UnsupportedType(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	svc := newExtractionService(ex, new(mocks.MockLLMClient))
	body := &countingReader{r: strings.NewReader("GIF89a")}

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "exhibit.gif", MIMEType: "image/gif", Size: 6, Body: body,
	}, nil)

	require.Error(t, err)
	assert.Equal(t, "Please upload a TXT, DOCX, or PDF file", err.Error())
	assert.Equal(t, 0, body.reads)
}

func TestExtractionService_Extract_PDFRequiresSettings(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	svc := newExtractionService(ex, new(mocks.MockLLMClient))
	body := &countingReader{r: strings.NewReader("%PDF-1.4")}

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "brief.pdf", MIMEType: "application/pdf", Size: 8, Body: body,
	}, nil)

	require.Error(t, err)
	assert.Equal(t, "PDF processing requires LLM settings for text cleaning", err.Error())
	assert.Equal(t, 0, body.reads)
	ex.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_PDFCleaned(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	llm := new(mocks.MockLLMClient)
	svc := newExtractionService(ex, llm)
	settings := testSettings()

	ex.On("Extract", mock.Anything, domain.FileTypePDF, mock.Anything).Return("Page 1 raw   text", nil)
	llm.On("ProcessText", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasSuffix(p, "Page 1 raw   text")
	}), *settings).Return(domain.ProcessResult{Success: true, Content: "  raw text cleaned \n"})

	doc, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "brief.pdf", MIMEType: "application/pdf", Size: 100, Body: bytes.NewReader([]byte("%PDF")),
	}, settings)

	require.NoError(t, err)
	assert.Equal(t, "raw text cleaned", doc.Text)
	assert.True(t, doc.Cleaned)
	assert.False(t, doc.Degraded)
	ex.AssertExpectations(t)
	llm.AssertExpectations(t)
}

func TestExtractionService_Extract_PDFCleaningFallsBackToRaw(t *testing.T) {
	cases := []struct {
		name   string
		result domain.ProcessResult
		reason string
	}{
		{"llm failure", domain.ProcessResult{Success: false, Error: "OpenAI API request failed"}, "OpenAI API request failed"},
		{"empty content", domain.ProcessResult{Success: true, Content: "  \n "}, "LLM returned empty content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex := new(mocks.MockTextExtractor)
			llm := new(mocks.MockLLMClient)
			svc := newExtractionService(ex, llm)
			raw := "  raw PDF text  "

			ex.On("Extract", mock.Anything, domain.FileTypePDF, mock.Anything).Return(raw, nil)
			llm.On("ProcessText", mock.Anything, mock.Anything, mock.Anything).Return(tc.result)

			doc, err := svc.Extract(context.Background(), domain.UploadedFile{
				Name: "scan.pdf", MIMEType: "application/pdf", Size: 10, Body: strings.NewReader("%PDF"),
			}, testSettings())

			require.NoError(t, err)
			assert.Equal(t, raw, doc.Text)
			assert.True(t, doc.Degraded)
			assert.False(t, doc.Cleaned)
			assert.Equal(t, tc.reason, doc.CleaningError)
		})
	}
}

func TestExtractionService_Extract_PDFBlankTextFailsCleaning(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	llm := new(mocks.MockLLMClient)
	svc := newExtractionService(ex, llm)

	ex.On("Extract", mock.Anything, domain.FileTypePDF, mock.Anything).Return("   ", nil)

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "blank.pdf", MIMEType: "application/pdf", Size: 10, Body: strings.NewReader("%PDF"),
	}, testSettings())

	assert.ErrorIs(t, err, domain.ErrNoTextToClean)
	llm.AssertNotCalled(t, "ProcessText", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_WrapsGenericFailure(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	svc := newExtractionService(ex, new(mocks.MockLLMClient))

	ex.On("Extract", mock.Anything, domain.FileTypeDOCX, mock.Anything).Return("", errors.New("invalid DOCX file: zip: not a valid zip file"))

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "motion.docx", MIMEType: domain.MIMETypeDOCX, Size: 10, Body: strings.NewReader("nope"),
	}, nil)

	require.Error(t, err)
	assert.Equal(t, "Failed to extract text: invalid DOCX file: zip: not a valid zip file", err.Error())
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtractionService_Extract_KeepsPDFWrapping(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	svc := newExtractionService(ex, new(mocks.MockLLMClient))

	pdfErr := &extractor.ExtractionError{Format: domain.FileTypePDF, Err: errors.New("malformed xref")}
	ex.On("Extract", mock.Anything, domain.FileTypePDF, mock.Anything).Return("", pdfErr)

	_, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "bad.pdf", MIMEType: "application/pdf", Size: 10, Body: strings.NewReader("%PDF"),
	}, testSettings())

	require.Error(t, err)
	assert.Equal(t, "Failed to extract text from PDF: malformed xref", err.Error())
}

func TestExtractionService_Extract_SniffsGenericMIME(t *testing.T) {
	ex := new(mocks.MockTextExtractor)
	llm := new(mocks.MockLLMClient)
	svc := newExtractionService(ex, llm)
	pdf := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")

	ex.On("Extract", mock.Anything, domain.FileTypePDF, mock.Anything).Return("text", nil)
	llm.On("ProcessText", mock.Anything, mock.Anything, mock.Anything).Return(domain.ProcessResult{Success: true, Content: "text"})

	doc, err := svc.Extract(context.Background(), domain.UploadedFile{
		Name: "upload.txt", MIMEType: "application/octet-stream", Size: int64(len(pdf)), Body: bytes.NewReader(pdf),
	}, testSettings())

	require.NoError(t, err)
	assert.Equal(t, domain.FileTypePDF, doc.FileType)
}

func TestExtractionService_Clean_BlankInput(t *testing.T) {
	svc := newExtractionService(new(mocks.MockTextExtractor), new(mocks.MockLLMClient))

	_, err := svc.Clean(context.Background(), " \n\t", *testSettings())

	require.Error(t, err)
	assert.Equal(t, "No text content to clean", err.Error())
}
