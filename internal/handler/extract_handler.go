package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pleadmd/internal/domain"
	"pleadmd/internal/service"
	"pleadmd/internal/validator"
)

// multipartOverhead allows for form boundaries and the settings field on
// top of the file itself.
const multipartOverhead = 1 << 20

// ExtractHandler handles document text extraction.
type ExtractHandler struct {
	extractionService service.ExtractionService
	settingsService   service.SettingsService
	maxBytes          int64
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService, settingsService service.SettingsService, maxBytes int64) *ExtractHandler {
	if maxBytes <= 0 {
		maxBytes = validator.DefaultMaxFileSize
	}
	return &ExtractHandler{extractionService: extractionService, settingsService: settingsService, maxBytes: maxBytes}
}

// Extract handles POST /api/v1/extract
// @Summary Extract text from a legal document
// @Description Upload a TXT, DOCX or PDF file. PDF text is cleaned through the configured LLM.
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (TXT, DOCX or PDF)"
// @Param settings formData string false "Conversion settings as JSON; defaults to the saved settings"
// @Success 200 {object} APIResponse{data=ExtractResponse}
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type or bad settings"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Extraction failed"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			HandleError(c, &validator.FileTooLargeError{Limit: h.maxBytes})
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	var settings *domain.ConversionSettings
	if raw := strings.TrimSpace(c.PostForm("settings")); raw != "" {
		settings = &domain.ConversionSettings{}
		if err := json.Unmarshal([]byte(raw), settings); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_SETTINGS", "settings must be valid JSON")
			return
		}
	} else {
		settings, err = h.settingsService.GetSettings(c.Request.Context())
		if err != nil {
			HandleError(c, err)
			return
		}
	}

	doc, err := h.extractionService.Extract(c.Request.Context(), domain.UploadedFile{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Body:     file,
	}, settings)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ExtractResponse{ExtractedDocument: doc, SizeLabel: validator.FormatFileSize(doc.Size)})
}
