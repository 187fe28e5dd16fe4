package alert

import (
	"context"
)

type StubAlertRepo struct {
	nextId int
	data   []BudgetAlert
}

func NewStubAlertRepo() *StubAlertRepo {
	return &StubAlertRepo{}
}

func (s *StubAlertRepo) Store(ctx context.Context, alert BudgetAlert) (int, error) {
	s.nextId++
	alert.ID = s.nextId
	s.data = append(s.data, alert)
	if len(s.data) > maxStoredAlerts {
		s.data = s.data[len(s.data)-maxStoredAlerts:]
	}
	return alert.ID, nil
}

func (s *StubAlertRepo) GetAll(ctx context.Context) ([]BudgetAlert, error) {
	alerts := make([]BudgetAlert, len(s.data))
	copy(alerts, s.data)
	return alerts, nil
}

func (s *StubAlertRepo) DeleteAll(ctx context.Context) error {
	s.data = nil
	return nil
}

func (s *StubAlertRepo) Cleanup() {
	s.data = nil
	s.nextId = 0
}
