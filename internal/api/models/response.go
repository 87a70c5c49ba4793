package models

import (
	"time"

	"financial-health/internal/benchmark"
	"financial-health/internal/model"
)

// BusinessResponse wraps a business record
type BusinessResponse struct {
	Status   string         `json:"status"`
	Business model.Business `json:"business"`
}

// UploadResponse represents the result of one financial document upload
type UploadResponse struct {
	Status           string                 `json:"status"`
	Message          string                 `json:"message"`
	DataID           string                 `json:"data_id"`
	Kind             model.DocumentKind     `json:"kind"`
	ExtractedData    map[string]float64     `json:"extracted_data,omitempty"`
	ExpenseBreakdown model.ExpenseBreakdown `json:"expense_breakdown"`
	DerivedFields    []model.Field          `json:"derived_fields,omitempty"`
	RawText          string                 `json:"raw_text,omitempty"`
}

// FinancialRecordSummary is one row of the upload listing
type FinancialRecordSummary struct {
	ID         string             `json:"id"`
	FiscalYear string             `json:"fiscal_year"`
	Kind       model.DocumentKind `json:"kind"`
	Revenue    float64            `json:"revenue"`
	Expenses   float64            `json:"expenses"`
	NetProfit  float64            `json:"net_profit"`
	UploadedAt time.Time          `json:"uploaded_at"`
}

// FinancialRecordList represents the uploads of one business
type FinancialRecordList struct {
	Status string                   `json:"status"`
	Count  int                      `json:"count"`
	Data   []FinancialRecordSummary `json:"data"`
}

// AssessmentResponse carries one assessment. Assessment is a model.Assessment,
// or its translated key/value form when Language is not "en".
type AssessmentResponse struct {
	Status       string `json:"status"`
	AssessmentID string `json:"assessment_id,omitempty"`
	BusinessID   string `json:"business_id,omitempty"`
	Assessment   any    `json:"assessment"`
	Language     string `json:"language"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// AssessmentSummary is one row of an assessment listing
type AssessmentSummary struct {
	ID                     string         `json:"id"`
	FinancialHealthScore   int            `json:"financial_health_score"`
	CreditworthinessRating model.Rating   `json:"creditworthiness_rating"`
	RiskLevel              model.Severity `json:"risk_level"`
	CreatedAt              time.Time      `json:"created_at"`
}

// AssessmentList represents all assessments of one business
type AssessmentList struct {
	Status      string              `json:"status"`
	Count       int                 `json:"count"`
	Assessments []AssessmentSummary `json:"assessments"`
	Language    string              `json:"language"`
}

// BenchmarksResponse lists the industry benchmark table
type BenchmarksResponse struct {
	Benchmarks      []benchmark.Entry `json:"benchmarks"`
	DefaultIndustry model.Industry    `json:"default_industry"`
}

// LanguagesResponse lists supported report languages
type LanguagesResponse struct {
	Status             string   `json:"status"`
	SupportedLanguages []string `json:"supported_languages"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
