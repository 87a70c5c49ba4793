package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"financial-health/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the tables Postgres reads and writes. Records are kept as
// JSONB blobs next to the columns used for lookup.
const Schema = `
CREATE TABLE IF NOT EXISTS businesses (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	industry   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS financial_records (
	id          TEXT PRIMARY KEY,
	business_id TEXT NOT NULL REFERENCES businesses(id),
	record_json JSONB NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS financial_records_business_idx ON financial_records (business_id, uploaded_at DESC);
CREATE TABLE IF NOT EXISTS assessments (
	id              TEXT PRIMARY KEY,
	business_id     TEXT NOT NULL REFERENCES businesses(id),
	assessment_json JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS assessments_business_idx ON assessments (business_id, created_at DESC);
`

// Postgres is a Repository backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ Repository = (*Postgres)(nil)

// OpenPostgres connects to databaseURL and ensures the schema exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, errors.New("database url not set")
	}
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	p := &Postgres{pool: pool, now: time.Now}
	if err := p.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// EnsureSchema runs Schema.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) CreateBusiness(ctx context.Context, b *model.Business) error {
	stamp(&b.ID, &b.CreatedAt, p.now)
	_, err := p.pool.Exec(ctx,
		`INSERT INTO businesses (id, name, industry, created_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, string(b.Industry), b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (p *Postgres) GetBusiness(ctx context.Context, id string) (model.Business, error) {
	var (
		b        model.Business
		industry string
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, industry, created_at FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &industry, &b.CreatedAt)
	if err != nil {
		return model.Business{}, notFound(err, "business "+id)
	}
	b.Industry = model.Industry(industry)
	return b, nil
}

func (p *Postgres) SaveFinancialRecord(ctx context.Context, r *model.FinancialRecord) error {
	stamp(&r.ID, &r.UploadedAt, p.now)
	jsonData, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal financial record: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO financial_records (id, business_id, record_json, uploaded_at) VALUES ($1, $2, $3, $4)`,
		r.ID, r.BusinessID, jsonData, r.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to save financial record: %w", err)
	}
	return nil
}

func (p *Postgres) ListFinancialRecords(ctx context.Context, businessID string) ([]model.FinancialRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT record_json FROM financial_records WHERE business_id = $1 ORDER BY uploaded_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	return collectJSON[model.FinancialRecord](rows)
}

func (p *Postgres) LatestFinancialRecord(ctx context.Context, businessID string) (model.FinancialRecord, error) {
	var jsonData []byte
	err := p.pool.QueryRow(ctx,
		`SELECT record_json FROM financial_records WHERE business_id = $1 ORDER BY uploaded_at DESC LIMIT 1`, businessID).
		Scan(&jsonData)
	if err != nil {
		return model.FinancialRecord{}, notFound(err, "financial data for business "+businessID)
	}
	var r model.FinancialRecord
	if err := json.Unmarshal(jsonData, &r); err != nil {
		return model.FinancialRecord{}, fmt.Errorf("failed to unmarshal financial record: %w", err)
	}
	return r, nil
}

func (p *Postgres) SaveAssessment(ctx context.Context, r *model.AssessmentRecord) error {
	stamp(&r.ID, &r.CreatedAt, p.now)
	jsonData, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO assessments (id, business_id, assessment_json, created_at) VALUES ($1, $2, $3, $4)`,
		r.ID, r.BusinessID, jsonData, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

func (p *Postgres) GetAssessment(ctx context.Context, id string) (model.AssessmentRecord, error) {
	var jsonData []byte
	err := p.pool.QueryRow(ctx, `SELECT assessment_json FROM assessments WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		return model.AssessmentRecord{}, notFound(err, "assessment "+id)
	}
	var r model.AssessmentRecord
	if err := json.Unmarshal(jsonData, &r); err != nil {
		return model.AssessmentRecord{}, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	return r, nil
}

func (p *Postgres) ListAssessments(ctx context.Context, businessID string) ([]model.AssessmentRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT assessment_json FROM assessments WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return collectJSON[model.AssessmentRecord](rows)
}

func collectJSON[T any](rows pgx.Rows) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var v T
		if err := json.Unmarshal(jsonData, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
