package expense

import (
	"errors"
	"fmt"
	"time"
)

var ErrValidation = errors.New("validation failed")

// Expense is one immutable, append-only ledger entry. PercentOfSalary is
// derived at insertion time from the income submitted with the expense; the
// income itself is not retained.
type Expense struct {
	ID              int
	Date            string
	Category        string
	Amount          float64
	Note            string
	PercentOfSalary float64
}

func (e Expense) Validate() error {
	if e.Date == "" {
		return fmt.Errorf("%w: date must not be empty", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("%w: date must be a valid date (YYYY-MM-DD)", ErrValidation)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: category must not be empty", ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// ChartData is the aggregated spending view consumed by the home screen chart.
type ChartData struct {
	Labels   []string
	Expenses []float64
}

// fallbackChartData is returned when the ledger is empty, so the chart always
// has something to render. Presentation behavior, not real computation.
func fallbackChartData() ChartData {
	return ChartData{
		Labels:   []string{"Food", "Transport", "Rent", "Shopping", "Others"},
		Expenses: []float64{0.8, 0.6, 20.0, 0.7, 0.5},
	}
}
