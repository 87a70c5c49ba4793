package model

// Severity grades a risk finding and the aggregate risk level.
// Keep these values stable; they are stored and translated as-is.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Escalate returns the more severe of s and other. Levels never go down.
func (s Severity) Escalate(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	if s == "" {
		return SeverityLow
	}
	return s
}

// TranslationKey is the label key used by the translation layer ("high_risk", ...).
func (s Severity) TranslationKey() string {
	switch s {
	case SeverityHigh:
		return "high_risk"
	case SeverityMedium:
		return "medium_risk"
	default:
		return "low_risk"
	}
}
