package models

import "financial-health/internal/model"

// CreateBusinessRequest represents the request body for registering a business
type CreateBusinessRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	BusinessType string `json:"business_type"` // industry; unknown values resolve to services
}

// EvaluateRequest represents the request body for a stateless assessment.
// Data holds free-text labelled line items and, when set, is normalized
// in place of Metrics.
type EvaluateRequest struct {
	Metrics  model.Metrics  `json:"metrics"`
	Data     map[string]any `json:"data,omitempty"`
	Industry string         `json:"industry"`
	Language string         `json:"language,omitempty"` // default: "en"
}
