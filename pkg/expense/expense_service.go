package expense

import (
	"context"
	"sort"

	"github.com/saheli/saheli/pkg/alert"
	log "github.com/sirupsen/logrus"
)

const chartTopCategories = 5

type ExpenseService interface {
	// Record validates and stores an expense, then runs the best-effort
	// budget threshold check. A failed check never fails the recording; the
	// returned alert is nil in that case.
	Record(ctx context.Context, expense Expense, income float64) (Expense, *alert.BudgetAlert, error)
	List(ctx context.Context) ([]Expense, error)
	AmountTotalsByCategory(ctx context.Context) (map[string]float64, error)
	PercentTotalsByCategory(ctx context.Context) (map[string]float64, error)
	ChartData(ctx context.Context) (ChartData, error)
	ExportCSV(ctx context.Context) (string, error)
}

type ExpenseServiceImpl struct {
	repo   ExpenseRepo
	alerts alert.AlertService
}

func NewExpenseService(repo ExpenseRepo, alerts alert.AlertService) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, alerts: alerts}
}

func (s *ExpenseServiceImpl) Record(ctx context.Context, expense Expense, income float64) (Expense, *alert.BudgetAlert, error) {
	if err := expense.Validate(); err != nil {
		return Expense{}, nil, err
	}

	// Missing income is treated as zero spend-share, not as an error. The
	// mobile app relies on this when no income has been configured yet.
	if income > 0 {
		expense.PercentOfSalary = expense.Amount / income * 100
	} else {
		expense.PercentOfSalary = 0
	}

	id, err := s.repo.Store(ctx, expense)
	if err != nil {
		return Expense{}, nil, err
	}
	expense.ID = id

	return expense, s.checkBudget(ctx, expense.Category, income), nil
}

// checkBudget runs the threshold check as a side computation: any failure is
// logged and swallowed so the expense recording still succeeds.
func (s *ExpenseServiceImpl) checkBudget(ctx context.Context, category string, income float64) *alert.BudgetAlert {
	spentTotal, err := s.repo.AmountTotalForCategory(ctx, category)
	if err != nil {
		log.Warnf("skipping budget check for %s: %v", category, err)
		return nil
	}

	budgetAlert, err := s.alerts.CheckThreshold(ctx, category, spentTotal, income)
	if err != nil {
		log.Warnf("budget threshold check failed for %s: %v", category, err)
		return nil
	}
	return budgetAlert
}

func (s *ExpenseServiceImpl) List(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

func (s *ExpenseServiceImpl) AmountTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	return s.repo.AmountTotalsByCategory(ctx)
}

func (s *ExpenseServiceImpl) PercentTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	return s.repo.PercentTotalsByCategory(ctx)
}

// ChartData returns the top spending categories by summed percent of salary,
// highest first. An empty ledger yields the fixed fallback sample.
func (s *ExpenseServiceImpl) ChartData(ctx context.Context) (ChartData, error) {
	totals, err := s.repo.PercentTotalsByCategory(ctx)
	if err != nil {
		return ChartData{}, err
	}
	if len(totals) == 0 {
		return fallbackChartData(), nil
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if totals[categories[i]] != totals[categories[j]] {
			return totals[categories[i]] > totals[categories[j]]
		}
		return categories[i] < categories[j]
	})
	if len(categories) > chartTopCategories {
		categories = categories[:chartTopCategories]
	}

	chart := ChartData{
		Labels:   make([]string, 0, len(categories)),
		Expenses: make([]float64, 0, len(categories)),
	}
	for _, category := range categories {
		chart.Labels = append(chart.Labels, category)
		chart.Expenses = append(chart.Expenses, totals[category])
	}
	return chart, nil
}

func (s *ExpenseServiceImpl) ExportCSV(ctx context.Context) (string, error) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return renderCSV(expenses)
}
