package analysis

import "financial-health/internal/model"

const pointsPerFactor = 25

// Creditworthiness is the scorer output.
type Creditworthiness struct {
	Score   int
	Rating  model.Rating
	Factors []model.ScoreFactor
}

// AssessCreditworthiness scores r against b. Four factors contribute up to
// 25 points each; the total is always within [0, 100].
func AssessCreditworthiness(r model.RatioSet, b model.IndustryBenchmark) Creditworthiness {
	factors := []model.ScoreFactor{
		{Name: "profit_margin", Value: r.ProfitMargin, Benchmark: b.ProfitMargin, Points: profitMarginPoints(r.ProfitMargin, b.ProfitMargin)},
		{Name: "debt_to_equity", Value: r.DebtToEquity, Benchmark: b.DebtToEquity, Points: leveragePoints(r.DebtToEquity, b.DebtToEquity)},
		{Name: "current_ratio", Value: r.CurrentRatio, Benchmark: b.CurrentRatio, Points: liquidityPoints(r.CurrentRatio, b.CurrentRatio)},
		{Name: "roe", Value: r.ROE, Points: roePoints(r.ROE)},
	}
	score := 0
	for _, f := range factors {
		score += f.Points
	}
	return Creditworthiness{
		Score:   score,
		Rating:  RatingForScore(score),
		Factors: factors,
	}
}

// RatingForScore maps a score to its letter: >=85 A, >=70 B, >=55 C, else D.
func RatingForScore(score int) model.Rating {
	switch {
	case score >= 85:
		return model.RatingA
	case score >= 70:
		return model.RatingB
	case score >= 55:
		return model.RatingC
	default:
		return model.RatingD
	}
}

func profitMarginPoints(v, bm float64) int {
	switch {
	case v >= bm:
		return pointsPerFactor
	case v >= bm*0.7:
		return 15
	case v >= 0:
		return 5
	default:
		return 0
	}
}

// Lower leverage is better.
func leveragePoints(v, bm float64) int {
	switch {
	case v <= bm:
		return pointsPerFactor
	case v <= bm*1.3:
		return 15
	case v <= bm*1.6:
		return 5
	default:
		return 0
	}
}

func liquidityPoints(v, bm float64) int {
	switch {
	case v >= bm:
		return pointsPerFactor
	case v >= bm*0.8:
		return 15
	case v >= 1.0:
		return 5
	default:
		return 0
	}
}

func roePoints(v float64) int {
	switch {
	case v >= 0.15:
		return pointsPerFactor
	case v >= 0.10:
		return 15
	case v >= 0.05:
		return 5
	default:
		return 0
	}
}
