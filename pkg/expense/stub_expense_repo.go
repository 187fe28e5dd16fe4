package expense

import (
	"context"
)

type StubExpenseRepo struct {
	nextId int
	data   []Expense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{}
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) (int, error) {
	s.nextId++
	expense.ID = s.nextId
	s.data = append(s.data, expense)
	return expense.ID, nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, len(s.data))
	copy(expenses, s.data)
	return expenses, nil
}

func (s *StubExpenseRepo) AmountTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	totals := make(map[string]float64)
	for _, expense := range s.data {
		totals[expense.Category] += expense.Amount
	}
	return totals, nil
}

func (s *StubExpenseRepo) PercentTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	totals := make(map[string]float64)
	for _, expense := range s.data {
		totals[expense.Category] += expense.PercentOfSalary
	}
	return totals, nil
}

func (s *StubExpenseRepo) AmountTotalForCategory(ctx context.Context, category string) (float64, error) {
	total := 0.0
	for _, expense := range s.data {
		if expense.Category == category {
			total += expense.Amount
		}
	}
	return total, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = nil
	s.nextId = 0
}
