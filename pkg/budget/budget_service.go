package budget

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// TotalsProvider supplies per-category aggregates from the expense ledger.
type TotalsProvider func(ctx context.Context) (map[string]float64, error)

// Advisor is the AI collaborator used for the delegated narrative mode.
type Advisor interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type BudgetService interface {
	// GenerateRecommendation aggregates the ledger, runs the allocator, and
	// renders the analysis. When delegated is true, the narrative is produced
	// by the advisor; on advisor failure it falls back to the computed one.
	GenerateRecommendation(ctx context.Context, income float64, delegated bool) (AllocationResult, error)
	SaveLimits(ctx context.Context, budgets []CategoryBudget) error
	GetLimits(ctx context.Context) ([]CategoryBudget, error)
	// LimitFor exposes the limit table to the alert engine.
	LimitFor(ctx context.Context, category string) (float64, bool, error)
}

type BudgetServiceImpl struct {
	repo          BudgetRepo
	amountTotals  TotalsProvider
	percentTotals TotalsProvider
	advisor       Advisor
}

func NewBudgetServiceImpl(repo BudgetRepo, amountTotals TotalsProvider, percentTotals TotalsProvider, advisor Advisor) *BudgetServiceImpl {
	return &BudgetServiceImpl{
		repo:          repo,
		amountTotals:  amountTotals,
		percentTotals: percentTotals,
		advisor:       advisor,
	}
}

func (s *BudgetServiceImpl) GenerateRecommendation(ctx context.Context, income float64, delegated bool) (AllocationResult, error) {
	if income <= 0 {
		return AllocationResult{}, fmt.Errorf("%w: income must be positive", ErrValidation)
	}

	totals, err := s.amountTotals(ctx)
	if err != nil {
		return AllocationResult{}, fmt.Errorf("failed to aggregate expenses: %w", err)
	}

	// Observed percent-of-income per category, from current amounts and the
	// income supplied with this request.
	observed := make(map[string]float64)
	for _, category := range AllowedCategories() {
		if total, ok := totals[category]; ok {
			observed[category] = round1(total / income * 100)
		}
	}

	alloc, err := Recommend(income, observed)
	if err != nil {
		return AllocationResult{}, err
	}

	analysis := renderAnalysis(income, alloc)
	if delegated {
		if delegatedAnalysis, err := s.delegatedAnalysis(ctx, income); err != nil {
			log.Warnf("advisor analysis failed, falling back to computed narrative: %v", err)
		} else {
			analysis = delegatedAnalysis
		}
	}

	return AllocationResult{
		Budget:   alloc.Budget,
		Actual:   alloc.Actual,
		Analysis: analysis,
	}, nil
}

func (s *BudgetServiceImpl) delegatedAnalysis(ctx context.Context, income float64) (string, error) {
	percentTotals, err := s.percentTotals(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate percent totals: %w", err)
	}
	return s.advisor.Ask(ctx, buildAdvisorPrompt(income, percentTotals))
}

func (s *BudgetServiceImpl) SaveLimits(ctx context.Context, budgets []CategoryBudget) error {
	if len(budgets) == 0 {
		return fmt.Errorf("%w: no budget data provided", ErrValidation)
	}
	for _, budget := range budgets {
		if budget.Category == "" {
			return fmt.Errorf("%w: category must not be empty", ErrValidation)
		}
		if budget.Percentage < 0 || budget.Percentage > 100 {
			return fmt.Errorf("%w: percentage for %s must be between 0 and 100", ErrValidation, budget.Category)
		}
	}
	return s.repo.ReplaceAll(ctx, budgets)
}

func (s *BudgetServiceImpl) GetLimits(ctx context.Context) ([]CategoryBudget, error) {
	return s.repo.GetAll(ctx)
}

func (s *BudgetServiceImpl) LimitFor(ctx context.Context, category string) (float64, bool, error) {
	return s.repo.FindPercentage(ctx, category)
}
