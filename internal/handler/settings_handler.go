package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pleadmd/internal/domain"
	"pleadmd/internal/service"
)

// SettingsHandler handles the saved conversion settings and example library.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func toSettingsResponse(s *domain.ConversionSettings) SettingsResponse {
	out := SettingsResponse{ConversionSettings: *s, HasAPIKey: s.APIKey != ""}
	out.APIKey = ""
	return out
}

// GetSettings handles GET /api/v1/settings
// @Summary Get saved settings
// @Description The API key is never returned; has_api_key reports whether one is stored.
// @Tags settings
// @Produce json
// @Success 200 {object} APIResponse{data=SettingsResponse}
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/settings
// @Summary Save settings
// @Description An empty api_key keeps the stored key.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body domain.ConversionSettings true "Settings"
// @Success 200 {object} APIResponse{data=SettingsResponse}
// @Failure 400 {object} ErrorResponseBody "Invalid settings"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req domain.ConversionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if req.APIKey == "" {
		current, err := h.settingsService.GetSettings(c.Request.Context())
		if err != nil {
			HandleError(c, err)
			return
		}
		req.APIKey = current.APIKey
	}

	saved, err := h.settingsService.SaveSettings(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, toSettingsResponse(saved))
}

// ListExamples handles GET /api/v1/examples
// @Summary List conversion examples
// @Tags examples
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.ConversionExample}
// @Router /examples [get]
func (h *SettingsHandler) ListExamples(c *gin.Context) {
	examples, err := h.settingsService.ListExamples(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, examples)
}

// CreateExample handles POST /api/v1/examples
// @Summary Create a conversion example
// @Tags examples
// @Accept json
// @Produce json
// @Param body body ExampleRequest true "Example"
// @Success 201 {object} APIResponse{data=domain.ConversionExample}
// @Failure 400 {object} ErrorResponseBody "Invalid example"
// @Router /examples [post]
func (h *SettingsHandler) CreateExample(c *gin.Context) {
	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ex, err := h.settingsService.CreateExample(c.Request.Context(), exampleInput(req))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, ex)
}

// UpdateExample handles PUT /api/v1/examples/:id
// @Summary Update a conversion example
// @Tags examples
// @Accept json
// @Produce json
// @Param id path string true "Example ID"
// @Param body body ExampleRequest true "Example"
// @Success 200 {object} APIResponse{data=domain.ConversionExample}
// @Failure 404 {object} ErrorResponseBody "Example not found"
// @Router /examples/{id} [put]
func (h *SettingsHandler) UpdateExample(c *gin.Context) {
	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ex, err := h.settingsService.UpdateExample(c.Request.Context(), c.Param("id"), exampleInput(req))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ex)
}

// DeleteExample handles DELETE /api/v1/examples/:id
// @Summary Delete a conversion example
// @Tags examples
// @Produce json
// @Param id path string true "Example ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} ErrorResponseBody "Example not found"
// @Router /examples/{id} [delete]
func (h *SettingsHandler) DeleteExample(c *gin.Context) {
	if err := h.settingsService.DeleteExample(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "example deleted"})
}

func exampleInput(req ExampleRequest) service.ExampleInput {
	return service.ExampleInput{
		Name:         req.Name,
		OriginalText: req.OriginalText,
		MarkdownText: req.MarkdownText,
		PleadingType: req.PleadingType,
	}
}
