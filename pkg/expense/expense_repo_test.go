package expense

import (
	"context"
	"testing"

	"github.com/saheli/saheli/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepoImpl_Store(t *testing.T) {
	t.Run("should store expenses and return them in insertion order", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewExpenseRepo(db)

		first := Expense{Date: "2025-03-14", Category: "Food", Amount: 500, Note: "groceries", PercentOfSalary: 5}
		second := Expense{Date: "2025-03-15", Category: "Transport", Amount: 120, Note: "", PercentOfSalary: 1.2}

		// when
		firstID, err := repo.Store(context.Background(), first)
		require.NoError(t, err)
		secondID, err := repo.Store(context.Background(), second)
		require.NoError(t, err)

		// then
		assert.Less(t, firstID, secondID)

		expenses, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "Food", expenses[0].Category)
		assert.Equal(t, 5.0, expenses[0].PercentOfSalary)
		assert.Equal(t, "Transport", expenses[1].Category)
	})
}

func TestExpenseRepoImpl_Totals(t *testing.T) {
	seed := func(t *testing.T, repo *ExpenseRepoImpl) {
		for _, expense := range []Expense{
			{Date: "2025-03-14", Category: "Food", Amount: 500, PercentOfSalary: 5},
			{Date: "2025-03-15", Category: "Food", Amount: 300, PercentOfSalary: 3},
			{Date: "2025-03-16", Category: "Rent", Amount: 2000, PercentOfSalary: 20},
		} {
			_, err := repo.Store(context.Background(), expense)
			require.NoError(t, err)
		}
	}

	t.Run("should sum amounts per category", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewExpenseRepo(db)
		seed(t, repo)

		totals, err := repo.AmountTotalsByCategory(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"Food": 800, "Rent": 2000}, totals)
	})

	t.Run("should sum percent shares per category", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewExpenseRepo(db)
		seed(t, repo)

		totals, err := repo.PercentTotalsByCategory(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"Food": 8, "Rent": 20}, totals)
	})

	t.Run("should return zero for a category with no expenses", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewExpenseRepo(db)
		seed(t, repo)

		total, err := repo.AmountTotalForCategory(context.Background(), "Shopping")

		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("should sum only the requested category", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewExpenseRepo(db)
		seed(t, repo)

		total, err := repo.AmountTotalForCategory(context.Background(), "Food")

		require.NoError(t, err)
		assert.Equal(t, 800.0, total)
	})
}
