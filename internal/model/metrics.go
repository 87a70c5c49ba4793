package model

// Field names a canonical financial metric.
// Keep these values stable; they are the JSON keys and the storage column names.
type Field string

const (
	FieldRevenue            Field = "revenue"
	FieldExpenses           Field = "expenses"
	FieldNetProfit          Field = "net_profit"
	FieldAccountsReceivable Field = "accounts_receivable"
	FieldAccountsPayable    Field = "accounts_payable"
	FieldInventory          Field = "inventory"
	FieldTotalAssets        Field = "total_assets"
	FieldTotalLiabilities   Field = "total_liabilities"
	FieldEquity             Field = "equity"
	FieldCurrentAssets      Field = "current_assets"
	FieldCurrentLiabilities Field = "current_liabilities"
	FieldCOGS               Field = "cogs"
)

// Fields lists every canonical field in display order.
var Fields = []Field{
	FieldRevenue,
	FieldExpenses,
	FieldNetProfit,
	FieldAccountsReceivable,
	FieldAccountsPayable,
	FieldInventory,
	FieldTotalAssets,
	FieldTotalLiabilities,
	FieldEquity,
	FieldCurrentAssets,
	FieldCurrentLiabilities,
	FieldCOGS,
}

// Metrics is the canonical, unit-consistent set of figures every downstream
// ratio is computed from. All fields are optional; an absent field is 0.
type Metrics struct {
	Revenue            float64 `json:"revenue"`
	Expenses           float64 `json:"expenses"`
	NetProfit          float64 `json:"net_profit"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	AccountsPayable    float64 `json:"accounts_payable"`
	Inventory          float64 `json:"inventory"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	Equity             float64 `json:"equity"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	COGS               float64 `json:"cogs"`
}

// Get returns the value of f, or 0 for an unknown field.
func (m Metrics) Get(f Field) float64 {
	if p := m.ptr(f); p != nil {
		return *p
	}
	return 0
}

// Set overwrites the value of f. Unknown fields are ignored.
func (m *Metrics) Set(f Field, v float64) {
	if p := m.ptr(f); p != nil {
		*p = v
	}
}

// Add accumulates v into f. Unknown fields are ignored.
func (m *Metrics) Add(f Field, v float64) {
	if p := m.ptr(f); p != nil {
		*p += v
	}
}

// Map returns the metrics keyed by field name.
func (m Metrics) Map() map[string]float64 {
	out := make(map[string]float64, len(Fields))
	for _, f := range Fields {
		out[string(f)] = m.Get(f)
	}
	return out
}

func (m *Metrics) ptr(f Field) *float64 {
	switch f {
	case FieldRevenue:
		return &m.Revenue
	case FieldExpenses:
		return &m.Expenses
	case FieldNetProfit:
		return &m.NetProfit
	case FieldAccountsReceivable:
		return &m.AccountsReceivable
	case FieldAccountsPayable:
		return &m.AccountsPayable
	case FieldInventory:
		return &m.Inventory
	case FieldTotalAssets:
		return &m.TotalAssets
	case FieldTotalLiabilities:
		return &m.TotalLiabilities
	case FieldEquity:
		return &m.Equity
	case FieldCurrentAssets:
		return &m.CurrentAssets
	case FieldCurrentLiabilities:
		return &m.CurrentLiabilities
	case FieldCOGS:
		return &m.COGS
	default:
		return nil
	}
}
