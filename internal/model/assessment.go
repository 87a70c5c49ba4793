package model

import "time"

// RatioSet is the named ratio set every scoring component reads from.
type RatioSet struct {
	ProfitMargin        float64 `json:"profit_margin"`
	ROA                 float64 `json:"roa"`
	ROE                 float64 `json:"roe"`
	CurrentRatio        float64 `json:"current_ratio"`
	DebtToEquity        float64 `json:"debt_to_equity"`
	DebtRatio           float64 `json:"debt_ratio"`
	InventoryTurnover   float64 `json:"inventory_turnover"`
	ReceivablesTurnover float64 `json:"receivables_turnover"`
}

// NamedRatio is one entry of a RatioSet, used for tabular projections.
type NamedRatio struct {
	Name  string
	Value float64
}

// Named returns the ratios in a fixed order.
func (r RatioSet) Named() []NamedRatio {
	return []NamedRatio{
		{"profit_margin", r.ProfitMargin},
		{"roa", r.ROA},
		{"roe", r.ROE},
		{"current_ratio", r.CurrentRatio},
		{"debt_to_equity", r.DebtToEquity},
		{"debt_ratio", r.DebtRatio},
		{"inventory_turnover", r.InventoryTurnover},
		{"receivables_turnover", r.ReceivablesTurnover},
	}
}

// Rating is the single-letter creditworthiness grade.
type Rating string

const (
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
)

// ScoreFactor records how many points one scoring factor contributed.
type ScoreFactor struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Benchmark float64 `json:"benchmark,omitempty"`
	Points    int     `json:"points"`
}

// RiskFinding is one identified risk.
type RiskFinding struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Suggestion is one cost-optimization recommendation.
type Suggestion struct {
	Category         string `json:"category"`
	Suggestion       string `json:"suggestion"`
	SavingsPotential string `json:"savings_potential"`
	Action           string `json:"action"`
}

// ForecastPoint is the projected value for one future period (1-based).
type ForecastPoint struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

// Forecast is a projected revenue and profit series.
type Forecast struct {
	Model           string          `json:"model"`
	GrowthRate      float64         `json:"growth_rate"`
	HorizonMonths   int             `json:"horizon_months"`
	RevenueForecast []ForecastPoint `json:"revenue_forecast"`
	ProfitForecast  []ForecastPoint `json:"profit_forecast"`
}

// Assessment is the immutable result of one engine run.
// Ownership passes to the caller for persistence and rendering.
type Assessment struct {
	Industry     Industry          `json:"industry"`
	Score        int               `json:"financial_health_score"`
	Rating       Rating            `json:"creditworthiness_rating"`
	RiskLevel    Severity          `json:"risk_level"`
	Ratios       RatioSet          `json:"key_findings"`
	ScoreFactors []ScoreFactor     `json:"score_factors"`
	Risks        []RiskFinding     `json:"identified_risks"`
	Suggestions  []Suggestion      `json:"cost_optimizations"`
	Forecast     Forecast          `json:"forecast"`
	Benchmarks   IndustryBenchmark `json:"industry_benchmarks"`
	GeneratedAt  time.Time         `json:"assessment_date"`
}
