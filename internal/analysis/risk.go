package analysis

import "financial-health/internal/model"

const (
	RiskLiquidity     = "Liquidity Risk"
	RiskSolvency      = "Solvency Risk"
	RiskProfitability = "Profitability Risk"
)

// RiskProfile is the risk identifier output.
type RiskProfile struct {
	Level    model.Severity
	Findings []model.RiskFinding
}

// IdentifyRisks runs the rule cascade over r. All applicable rules fire, in
// liquidity, solvency, profitability order; the level starts at Low and only escalates.
func IdentifyRisks(r model.RatioSet, b model.IndustryBenchmark) RiskProfile {
	p := RiskProfile{Level: model.SeverityLow, Findings: []model.RiskFinding{}}

	switch {
	case r.CurrentRatio < 1.0:
		p.add(RiskLiquidity, model.SeverityHigh, "Current ratio below 1.0")
	case r.CurrentRatio < 1.5:
		p.add(RiskLiquidity, model.SeverityMedium, "Current ratio below industry benchmark")
	}

	if r.DebtToEquity > b.DebtToEquity*1.5 {
		p.add(RiskSolvency, model.SeverityHigh, "Excessive leverage")
	}

	switch {
	case r.ProfitMargin < 0:
		p.add(RiskProfitability, model.SeverityHigh, "Negative margins")
	case r.ProfitMargin < b.ProfitMargin*0.5:
		p.add(RiskProfitability, model.SeverityMedium, "Profit margin below half of industry benchmark")
	}

	return p
}

func (p *RiskProfile) add(kind string, sev model.Severity, desc string) {
	p.Findings = append(p.Findings, model.RiskFinding{Type: kind, Severity: sev, Description: desc})
	p.Level = p.Level.Escalate(sev)
}
