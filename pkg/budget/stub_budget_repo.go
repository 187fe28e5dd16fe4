package budget

import (
	"context"
)

type StubBudgetRepo struct {
	data map[string]float64
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]float64{}}
}

func (s *StubBudgetRepo) ReplaceAll(ctx context.Context, budgets []CategoryBudget) error {
	s.data = make(map[string]float64, len(budgets))
	for _, budget := range budgets {
		s.data[budget.Category] = budget.Percentage
	}
	return nil
}

func (s *StubBudgetRepo) GetAll(ctx context.Context) ([]CategoryBudget, error) {
	budgets := make([]CategoryBudget, 0, len(s.data))
	for category, percentage := range s.data {
		budgets = append(budgets, CategoryBudget{Category: category, Percentage: percentage})
	}
	return budgets, nil
}

func (s *StubBudgetRepo) FindPercentage(ctx context.Context, category string) (float64, bool, error) {
	percentage, ok := s.data[category]
	return percentage, ok, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[string]float64{}
}
