// Package store persists businesses, normalized financial records and
// assessments. Records are stored verbatim; nothing is recomputed on read.
package store

import (
	"context"
	"errors"
	"time"

	"financial-health/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Repository is implemented by Memory and Postgres.
type Repository interface {
	CreateBusiness(ctx context.Context, b *model.Business) error
	GetBusiness(ctx context.Context, id string) (model.Business, error)

	SaveFinancialRecord(ctx context.Context, r *model.FinancialRecord) error
	// ListFinancialRecords returns the business's records, newest first.
	ListFinancialRecords(ctx context.Context, businessID string) ([]model.FinancialRecord, error)
	LatestFinancialRecord(ctx context.Context, businessID string) (model.FinancialRecord, error)

	SaveAssessment(ctx context.Context, r *model.AssessmentRecord) error
	GetAssessment(ctx context.Context, id string) (model.AssessmentRecord, error)
	// ListAssessments returns the business's assessments, newest first.
	ListAssessments(ctx context.Context, businessID string) ([]model.AssessmentRecord, error)

	Close()
}

// stamp assigns an ID and creation time when they are unset.
func stamp(id *string, at *time.Time, now func() time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if at.IsZero() {
		*at = now().UTC()
	}
}
