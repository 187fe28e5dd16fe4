package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saheli/saheli/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func staticLimits(limits map[string]float64) LimitProvider {
	return func(ctx context.Context, category string) (float64, bool, error) {
		percentage, found := limits[category]
		return percentage, found, nil
	}
}

func newTestService(limits map[string]float64) (*AlertServiceImpl, *StubAlertRepo) {
	repo := NewStubAlertRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)}
	return NewAlertService(repo, staticLimits(limits), clock), repo
}

func TestAlertServiceImpl_CheckThreshold(t *testing.T) {
	t.Run("should emit an alert when cumulative spending exceeds the limit", func(t *testing.T) {
		// given a 10% Food limit on a ₹10000 income
		service, _ := newTestService(map[string]float64{"Food": 10})

		// when ₹1200 has been spent
		alert, err := service.CheckThreshold(ctx, "Food", 1200, 10000)

		// then
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.Equal(t, "Food", alert.Category)
		assert.Equal(t, 1000.0, alert.Limit)
		assert.Equal(t, 1200.0, alert.Spent)
		assert.Equal(t, "2025-03-14", alert.Date)
		assert.Equal(t, "You've exceeded your budget for Food! Limit: ₹1000.00, Spent: ₹1200.00", alert.Message)
		assert.NotEmpty(t, alert.Uid)
		assert.NotZero(t, alert.ID)
	})

	t.Run("should stay silent while spending is at or below the limit", func(t *testing.T) {
		service, repo := newTestService(map[string]float64{"Food": 10})

		for _, spent := range []float64{900, 1000} {
			alert, err := service.CheckThreshold(ctx, "Food", spent, 10000)
			require.NoError(t, err)
			assert.Nil(t, alert)
		}

		stored, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("should stay silent when no limit is configured for the category", func(t *testing.T) {
		service, _ := newTestService(map[string]float64{"Food": 10})

		alert, err := service.CheckThreshold(ctx, "Transport", 5000, 10000)

		require.NoError(t, err)
		assert.Nil(t, alert)
	})

	t.Run("should escalate severity for heavy overspend", func(t *testing.T) {
		service, _ := newTestService(map[string]float64{"Food": 10})

		// 1.2x the limit is still a warning
		alert, err := service.CheckThreshold(ctx, "Food", 1200, 10000)
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.Equal(t, SeverityWarning, alert.Severity)

		// 1.25x and beyond is high
		alert, err = service.CheckThreshold(ctx, "Food", 1250, 10000)
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.Equal(t, SeverityHigh, alert.Severity)
	})

	t.Run("should propagate limit lookup failures", func(t *testing.T) {
		repo := NewStubAlertRepo()
		failing := func(ctx context.Context, category string) (float64, bool, error) {
			return 0, false, errors.New("db gone")
		}
		service := NewAlertService(repo, failing, &utils.MockClock{})

		_, err := service.CheckThreshold(ctx, "Food", 1200, 10000)

		assert.Error(t, err)
	})
}

func TestAlertServiceImpl_Clear(t *testing.T) {
	t.Run("should leave the alert log empty", func(t *testing.T) {
		// given
		service, _ := newTestService(map[string]float64{"Food": 10})
		_, err := service.CheckThreshold(ctx, "Food", 1500, 10000)
		require.NoError(t, err)

		// when
		require.NoError(t, service.Clear(ctx))

		// then
		alerts, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}
