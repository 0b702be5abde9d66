package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pleadmd/internal/service"
)

// ConversionHandler handles markdown conversion and raw prompt processing.
type ConversionHandler struct {
	conversionService service.ConversionService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(conversionService service.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversionService: conversionService}
}

// Convert handles POST /api/v1/convert
// @Summary Convert text to markdown
// @Description LLM failures are reported in the result with success=false, not as an HTTP error.
// @Tags conversion
// @Accept json
// @Produce json
// @Param body body ConvertRequest true "Text and optional settings/examples"
// @Success 200 {object} APIResponse{data=domain.ConversionResult}
// @Failure 400 {object} ErrorResponseBody "Invalid request body"
// @Router /convert [post]
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req.Text, req.Settings, req.Examples)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Process handles POST /api/v1/process
// @Summary Send a single prompt to the configured LLM
// @Tags conversion
// @Accept json
// @Produce json
// @Param body body ProcessRequest true "Prompt and optional settings"
// @Success 200 {object} APIResponse{data=domain.ProcessResult}
// @Failure 400 {object} ErrorResponseBody "Invalid request body"
// @Router /process [post]
func (h *ConversionHandler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.conversionService.Process(c.Request.Context(), req.Prompt, req.Settings)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
