package handler

import (
	"pleadmd/internal/domain"
)

// Request and response bodies. The example tags feed the OpenAPI annotations.

// ConvertRequest represents the markdown conversion request body. Omitted
// settings or examples fall back to the saved ones.
type ConvertRequest struct {
	Text     string                     `json:"text" example:"IN THE SUPERIOR COURT OF CALIFORNIA..."`
	Settings *domain.ConversionSettings `json:"settings,omitempty"`
	Examples []domain.ConversionExample `json:"examples,omitempty"`
}

// ProcessRequest represents the single-prompt request body.
type ProcessRequest struct {
	Prompt   string                     `json:"prompt" example:"Summarize the following motion..."`
	Settings *domain.ConversionSettings `json:"settings,omitempty"`
}

// ExampleRequest represents the create/update example request body.
type ExampleRequest struct {
	Name         string `json:"name" binding:"required" example:"Standard complaint"`
	OriginalText string `json:"original_text" binding:"required" example:"PLAINTIFF ALLEGES AS FOLLOWS..."`
	MarkdownText string `json:"markdown_text" binding:"required" example:"# Complaint"`
	PleadingType string `json:"pleading_type" example:"Complaint"`
}

// ExtractResponse is the extracted document plus a human-readable size.
type ExtractResponse struct {
	*domain.ExtractedDocument
	SizeLabel string `json:"size_label" example:"1.5 MB"`
}

// SettingsResponse is the saved settings with the API key withheld.
type SettingsResponse struct {
	domain.ConversionSettings
	HasAPIKey bool `json:"has_api_key"`
}

// ErrorResponseBody documents the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}
