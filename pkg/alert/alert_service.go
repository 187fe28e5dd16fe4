package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saheli/saheli/internal/utils"
	log "github.com/sirupsen/logrus"
)

// LimitProvider resolves the stored budget limit percentage for a category.
// The second return value reports whether a limit exists at all.
type LimitProvider func(ctx context.Context, category string) (float64, bool, error)

type AlertService interface {
	// CheckThreshold compares cumulative category spending against the stored
	// limit and, when exceeded, persists and returns a new alert. A nil alert
	// with a nil error means no limit was crossed.
	CheckThreshold(ctx context.Context, category string, spentTotal float64, income float64) (*BudgetAlert, error)
	GetAll(ctx context.Context) ([]BudgetAlert, error)
	Clear(ctx context.Context) error
}

type AlertServiceImpl struct {
	repo   AlertRepo
	limits LimitProvider
	clock  utils.Clock
}

func NewAlertService(repo AlertRepo, limits LimitProvider, clock utils.Clock) *AlertServiceImpl {
	return &AlertServiceImpl{repo: repo, limits: limits, clock: clock}
}

func (s *AlertServiceImpl) CheckThreshold(ctx context.Context, category string, spentTotal float64, income float64) (*BudgetAlert, error) {
	limitPercentage, found, err := s.limits(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to read budget limit for %s: %w", category, err)
	}
	if !found {
		return nil, nil
	}

	limitAmount := limitPercentage / 100 * income
	if spentTotal <= limitAmount {
		return nil, nil
	}

	alert := BudgetAlert{
		Uid:      uuid.New().String(),
		Category: category,
		Date:     s.clock.Now().Format("2006-01-02"),
		Message: fmt.Sprintf("You've exceeded your budget for %s! Limit: ₹%.2f, Spent: ₹%.2f",
			category, limitAmount, spentTotal),
		Limit:    limitAmount,
		Spent:    spentTotal,
		Severity: severityFor(spentTotal, limitAmount),
	}

	id, err := s.repo.Store(ctx, alert)
	if err != nil {
		return nil, err
	}
	alert.ID = id
	log.Debugf("budget alert emitted for %s (spent %.2f, limit %.2f)", category, spentTotal, limitAmount)

	return &alert, nil
}

func (s *AlertServiceImpl) GetAll(ctx context.Context) ([]BudgetAlert, error) {
	return s.repo.GetAll(ctx)
}

func (s *AlertServiceImpl) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
