// Package pipeline wires ingestion to assessment: load a document, normalize
// it, fill in working-capital inputs and run the engine.
package pipeline

import (
	"context"
	"fmt"

	"financial-health/internal/assessment"
	"financial-health/internal/config"
	"financial-health/internal/data"
	"financial-health/internal/forecast"
	"financial-health/internal/model"
	"financial-health/internal/normalize"
	"financial-health/internal/policy"

	"github.com/phuslu/log"
)

// Pipeline holds the collaborators of one ingestion/assessment flow.
type Pipeline struct {
	Loader     *data.Loader
	Normalizer *normalize.Normalizer
	Derivation policy.Derivation
	Engine     *assessment.Engine
}

// New builds a Pipeline.
func New(loader *data.Loader, n *normalize.Normalizer, d policy.Derivation, e *assessment.Engine) *Pipeline {
	return &Pipeline{Loader: loader, Normalizer: n, Derivation: d, Engine: e}
}

// FromConfig builds the Pipeline described by cfg.
func FromConfig(cfg *config.Config) *Pipeline {
	engine := assessment.New(cfg.Benchmarks(),
		assessment.WithForecaster(forecast.NewGeometric(cfg.Forecast.GrowthRate)),
		assessment.WithHorizon(cfg.Forecast.HorizonMonths),
	)
	loader := data.NewLoader(cfg.Upload.RawTextLimit, data.NewDocumentCache(cfg.Upload.CacheTTL))
	return New(loader, normalize.New(), cfg.Derivation, engine)
}

// Ingest loads an uploaded file and normalizes it.
func (p *Pipeline) Ingest(ctx context.Context, filename string, content []byte) (normalize.Outcome, error) {
	doc, err := p.Loader.Load(ctx, filename, content)
	if err != nil {
		return normalize.Outcome{}, err
	}
	out := p.Normalizer.Normalize(doc)
	log.Debug().
		Str("file", filename).
		Str("kind", string(out.Kind)).
		Int("rows", len(doc.Rows)).
		Msg("document normalized")
	return out, nil
}

// Assess fills in missing working-capital inputs and generates an assessment.
func (p *Pipeline) Assess(m model.Metrics, industry string) model.Assessment {
	m, filled := p.Derivation.Apply(m)
	if len(filled) > 0 {
		log.Debug().Strs("fields", fieldNames(filled)).Msg("derived working-capital inputs")
	}
	return p.Engine.Generate(m, industry)
}

// AssessFile runs Ingest then Assess. Raw-text documents cannot be assessed.
func (p *Pipeline) AssessFile(ctx context.Context, filename string, content []byte, industry string) (model.Assessment, normalize.Outcome, error) {
	out, err := p.Ingest(ctx, filename, content)
	if err != nil {
		return model.Assessment{}, out, err
	}
	if out.Kind != normalize.OutcomeMetrics {
		return model.Assessment{}, out, fmt.Errorf("%s: %w", filename, ErrNoNumericData)
	}
	return p.Assess(out.Metrics, industry), out, nil
}

func fieldNames(fs []model.Field) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
