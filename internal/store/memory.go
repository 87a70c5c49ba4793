package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"financial-health/internal/model"
)

// Memory is an in-process Repository. Data is lost on restart.
type Memory struct {
	mu          sync.RWMutex
	businesses  map[string]model.Business
	records     map[string][]model.FinancialRecord
	assessments map[string]model.AssessmentRecord
	byBusiness  map[string][]string
	now         func() time.Time
}

var _ Repository = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		businesses:  make(map[string]model.Business),
		records:     make(map[string][]model.FinancialRecord),
		assessments: make(map[string]model.AssessmentRecord),
		byBusiness:  make(map[string][]string),
		now:         time.Now,
	}
}

func (s *Memory) CreateBusiness(_ context.Context, b *model.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&b.ID, &b.CreatedAt, s.now)
	if _, exists := s.businesses[b.ID]; exists {
		return fmt.Errorf("business %s already exists", b.ID)
	}
	s.businesses[b.ID] = *b
	return nil
}

func (s *Memory) GetBusiness(_ context.Context, id string) (model.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.businesses[id]
	if !ok {
		return model.Business{}, fmt.Errorf("business %s: %w", id, ErrNotFound)
	}
	return b, nil
}

func (s *Memory) SaveFinancialRecord(_ context.Context, r *model.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.businesses[r.BusinessID]; !ok {
		return fmt.Errorf("business %s: %w", r.BusinessID, ErrNotFound)
	}
	stamp(&r.ID, &r.UploadedAt, s.now)
	s.records[r.BusinessID] = append(s.records[r.BusinessID], *r)
	return nil
}

func (s *Memory) ListFinancialRecords(_ context.Context, businessID string) ([]model.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[businessID]
	out := make([]model.FinancialRecord, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		out = append(out, recs[i])
	}
	return out, nil
}

func (s *Memory) LatestFinancialRecord(_ context.Context, businessID string) (model.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[businessID]
	if len(recs) == 0 {
		return model.FinancialRecord{}, fmt.Errorf("financial data for business %s: %w", businessID, ErrNotFound)
	}
	return recs[len(recs)-1], nil
}

func (s *Memory) SaveAssessment(_ context.Context, r *model.AssessmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&r.ID, &r.CreatedAt, s.now)
	s.assessments[r.ID] = *r
	s.byBusiness[r.BusinessID] = append(s.byBusiness[r.BusinessID], r.ID)
	return nil
}

func (s *Memory) GetAssessment(_ context.Context, id string) (model.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.assessments[id]
	if !ok {
		return model.AssessmentRecord{}, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	return r, nil
}

func (s *Memory) ListAssessments(_ context.Context, businessID string) ([]model.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byBusiness[businessID]
	out := make([]model.AssessmentRecord, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, s.assessments[ids[i]])
	}
	return out, nil
}

func (s *Memory) Close() {}
