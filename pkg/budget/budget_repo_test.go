package budget

import (
	"context"
	"testing"

	"github.com/saheli/saheli/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRepoImpl_ReplaceAll(t *testing.T) {
	t.Run("should replace existing rows atomically", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewBudgetRepo(db)
		require.NoError(t, repo.ReplaceAll(context.Background(), []CategoryBudget{
			{Category: CategoryFood, Percentage: 15},
			{Category: CategoryRent, Percentage: 25},
		}))

		// when
		require.NoError(t, repo.ReplaceAll(context.Background(), []CategoryBudget{
			{Category: CategoryFood, Percentage: 30},
			{Category: CategorySavings, Percentage: 20},
		}))

		// then
		budgets, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []CategoryBudget{
			{Category: CategoryFood, Percentage: 30},
			{Category: CategorySavings, Percentage: 20},
		}, budgets)
	})
}

func TestBudgetRepoImpl_FindPercentage(t *testing.T) {
	t.Run("should distinguish a missing limit from a zero limit", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewBudgetRepo(db)
		require.NoError(t, repo.ReplaceAll(context.Background(), []CategoryBudget{
			{Category: CategoryShopping, Percentage: 0},
		}))

		// when / then
		percentage, found, err := repo.FindPercentage(context.Background(), CategoryShopping)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 0.0, percentage)

		_, found, err = repo.FindPercentage(context.Background(), CategoryFood)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
