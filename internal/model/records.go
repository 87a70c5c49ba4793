package model

import "time"

// Business is the entity financial data and assessments are attached to.
type Business struct {
	ID        string    `json:"id"`
	Name      string    `json:"business_name"`
	Industry  Industry  `json:"business_type"`
	CreatedAt time.Time `json:"created_at"`
}

// FinancialRecord is one normalized upload for a business. RawText is set
// instead of Metrics when only text could be extracted.
type FinancialRecord struct {
	ID         string           `json:"id"`
	BusinessID string           `json:"business_id"`
	FiscalYear string           `json:"fiscal_year"`
	Source     string           `json:"source"`
	Kind       DocumentKind     `json:"kind"`
	Metrics    Metrics          `json:"metrics"`
	Expenses   ExpenseBreakdown `json:"expense_breakdown"`
	RawText    string           `json:"raw_text,omitempty"`
	UploadedAt time.Time        `json:"uploaded_at"`
}

// AssessmentRecord is a persisted Assessment.
type AssessmentRecord struct {
	ID                string     `json:"id"`
	BusinessID        string     `json:"business_id"`
	FinancialRecordID string     `json:"financial_record_id"`
	Assessment        Assessment `json:"assessment"`
	CreatedAt         time.Time  `json:"created_at"`
}
