// Package i18n translates report and response labels. Only keys are
// translated; values pass through untouched.
package i18n

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLanguage is used for unsupported or missing language codes.
const DefaultLanguage = "en"

var tables = map[string]map[string]string{
	"en": {
		"financial_health_score":  "Financial Health Score",
		"creditworthiness_rating": "Creditworthiness Rating",
		"risk_level":              "Risk Level",
		"revenue":                 "Revenue",
		"expenses":                "Expenses",
		"net_profit":              "Net Profit",
		"cash_flow":               "Cash Flow",
		"accounts_receivable":     "Accounts Receivable",
		"accounts_payable":        "Accounts Payable",
		"inventory":               "Inventory",
		"total_assets":            "Total Assets",
		"total_liabilities":       "Total Liabilities",
		"equity":                  "Equity",
		"low_risk":                "Low Risk",
		"medium_risk":             "Medium Risk",
		"high_risk":               "High Risk",
		"excellent":               "Excellent",
		"good":                    "Good",
		"fair":                    "Fair",
		"poor":                    "Poor",
		"key_findings":            "Key Findings",
		"recommendations":         "Recommendations",
		"cost_optimization":       "Cost Optimization Suggestions",
		"cost_optimizations":      "Cost Optimization Suggestions",
		"industry_benchmarks":     "Industry Benchmarks",
		"forecast":                "Financial Forecast",
		"revenue_forecast":        "Revenue Forecast",
		"profit_forecast":         "Profit Forecast",
		"revenue_streams":         "Revenue Streams",
		"expense_breakdown":       "Expense Breakdown",
		"identified_risks":        "Identified Risks",
		"assessment_date":         "Assessment Date",
		"industry":                "Industry",
		"profit_margin":           "Profit Margin",
		"roa":                     "Return on Assets",
		"roe":                     "Return on Equity",
		"current_ratio":           "Current Ratio",
		"debt_to_equity":          "Debt to Equity",
		"debt_ratio":              "Debt Ratio",
		"inventory_turnover":      "Inventory Turnover",
		"receivables_turnover":    "Receivables Turnover",
		"salaries":                "Salaries & Wages",
		"rent":                    "Rent & Facilities",
		"utilities":               "Utilities",
		"marketing":               "Marketing & Advertising",
		"supplies":                "Supplies & Materials",
		"maintenance":             "Maintenance & Repairs",
		"transportation":          "Transportation & Logistics",
		"other":                   "Other Expenses",
	},
	"hi": {
		"financial_health_score":  "वित्तीय स्वास्थ्य स्कोर",
		"creditworthiness_rating": "साख योग्यता रेटिंग",
		"risk_level":              "जोखिम स्तर",
		"revenue":                 "राजस्व",
		"expenses":                "खर्च",
		"net_profit":              "शुद्ध लाभ",
		"cash_flow":               "नकद प्रवाह",
		"accounts_receivable":     "प्राप्य खाते",
		"accounts_payable":        "देय खाते",
		"inventory":               "सूची",
		"total_assets":            "कुल संपत्ति",
		"total_liabilities":       "कुल देनदारियां",
		"equity":                  "इक्विटी",
		"low_risk":                "कम जोखिम",
		"medium_risk":             "मध्यम जोखिम",
		"high_risk":               "उच्च जोखिम",
		"excellent":               "उत्कृष्ट",
		"good":                    "अच्छा",
		"fair":                    "उचित",
		"poor":                    "खराब",
		"key_findings":            "मुख्य निष्कर्ष",
		"recommendations":         "सिफारिशें",
		"cost_optimization":       "लागत अनुकूलन सुझाव",
		"cost_optimizations":      "लागत अनुकूलन सुझाव",
		"industry_benchmarks":     "उद्योग बेंचमार्क",
		"forecast":                "वित्तीय पूर्वानुमान",
		"revenue_forecast":        "राजस्व पूर्वानुमान",
		"profit_forecast":         "लाभ पूर्वानुमान",
		"revenue_streams":         "राजस्व स्रोत",
		"expense_breakdown":       "खर्च विवरण",
		"identified_risks":        "पहचाने गए जोखिम",
		"assessment_date":         "आकलन तिथि",
		"industry":                "उद्योग",
		"profit_margin":           "लाभ मार्जिन",
		"roa":                     "परिसंपत्तियों पर प्रतिफल",
		"roe":                     "इक्विटी पर प्रतिफल",
		"current_ratio":           "चालू अनुपात",
		"debt_to_equity":          "ऋण-इक्विटी अनुपात",
		"debt_ratio":              "ऋण अनुपात",
		"inventory_turnover":      "सूची कारोबार",
		"receivables_turnover":    "प्राप्य कारोबार",
		"salaries":                "वेतन और मजदूरी",
		"rent":                    "किराया और सुविधाएं",
		"utilities":               "उपयोगिताएं",
		"marketing":               "विपणन और विज्ञापन",
		"supplies":                "आपूर्ति और सामग्री",
		"maintenance":             "रखरखाव और मरम्मत",
		"transportation":          "परिवहन और रसद",
		"other":                   "अन्य खर्च",
	},
}

var (
	supported = []language.Tag{language.English, language.Hindi}
	matcher   = language.NewMatcher(supported)
)

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"en", "hi"}
}

// Supported reports whether lang has a label table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Negotiate picks the best supported language for the given preferences,
// each either a plain code or an Accept-Language header value. Falls back to en.
func Negotiate(prefs ...string) string {
	for _, p := range prefs {
		if Supported(p) {
			return p
		}
	}
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	if Supported(base.String()) {
		return base.String()
	}
	return DefaultLanguage
}

// Translate returns the label for key in lang. Unknown keys come back unchanged;
// unsupported languages use English.
func Translate(key, lang string) string {
	t, ok := tables[lang]
	if !ok {
		t = tables[DefaultLanguage]
	}
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// TranslateMap returns a copy of data with every key translated, recursing into
// nested maps and maps inside slices. Values are never changed.
func TranslateMap(data map[string]any, lang string) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[Translate(k, lang)] = translateValue(v, lang)
	}
	return out
}

func translateValue(v any, lang string) any {
	switch x := v.(type) {
	case map[string]any:
		return TranslateMap(x, lang)
	case []any:
		items := make([]any, len(x))
		for i, item := range x {
			if m, ok := item.(map[string]any); ok {
				items[i] = TranslateMap(m, lang)
			} else {
				items[i] = item
			}
		}
		return items
	default:
		return v
	}
}

// TranslateJSON converts v to its JSON object form and translates the keys.
func TranslateJSON(v any, lang string) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("value is not a JSON object: %w", err)
	}
	return TranslateMap(m, lang), nil
}
