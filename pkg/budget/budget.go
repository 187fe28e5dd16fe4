package budget

// Allowed expense categories. Anything outside this set is excluded from
// budget computation, even though the ledger may still store it.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryRent      = "Rent"
	CategoryShopping  = "Shopping"
	CategoryOther     = "Other"
	CategorySavings   = "Savings"
)

// Category groups of the needs/wants/savings (50/30/20) framework.
var (
	NeedsCategories   = []string{CategoryFood, CategoryTransport, CategoryRent}
	WantsCategories   = []string{CategoryShopping, CategoryOther}
	SavingsCategories = []string{CategorySavings}
)

const (
	TargetNeeds   = 50.0
	TargetWants   = 30.0
	TargetSavings = 20.0
)

// AllowedCategories returns the fixed category set in a stable order.
func AllowedCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryRent,
		CategoryShopping,
		CategoryOther,
		CategorySavings,
	}
}

// CategoryBudget is one row of the persisted limit table: the recommended
// share of income for a category. The table is replaced wholesale on save.
type CategoryBudget struct {
	Category   string
	Percentage float64
}

// Allocation is the allocator output: recommended percentage per category,
// observed percentage per category, and the group-level observed totals used
// for the gap analysis.
type Allocation struct {
	Budget         map[string]float64
	Actual         map[string]float64
	CurrentNeeds   float64
	CurrentWants   float64
	CurrentSavings float64
	ColdStart      bool
}

// AllocationResult is what the recommendation operation returns to clients.
type AllocationResult struct {
	Budget   map[string]float64
	Actual   map[string]float64
	Analysis string
}
