package model

// ExpenseCategory is one bucket of the fixed spending taxonomy.
type ExpenseCategory string

const (
	ExpenseSalaries       ExpenseCategory = "salaries"
	ExpenseRent           ExpenseCategory = "rent"
	ExpenseUtilities      ExpenseCategory = "utilities"
	ExpenseMarketing      ExpenseCategory = "marketing"
	ExpenseSupplies       ExpenseCategory = "supplies"
	ExpenseMaintenance    ExpenseCategory = "maintenance"
	ExpenseTransportation ExpenseCategory = "transportation"
	ExpenseOther          ExpenseCategory = "other"
)

// ExpenseCategories lists the taxonomy in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseSalaries,
	ExpenseRent,
	ExpenseUtilities,
	ExpenseMarketing,
	ExpenseSupplies,
	ExpenseMaintenance,
	ExpenseTransportation,
	ExpenseOther,
}

// ExpenseBreakdown maps a category to its total. Missing categories are 0.
type ExpenseBreakdown map[ExpenseCategory]float64

// Total sums every category.
func (b ExpenseBreakdown) Total() float64 {
	sum := 0.0
	for _, v := range b {
		sum += v
	}
	return sum
}
