package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_ColdStart(t *testing.T) {
	t.Run("should return the static default allocation when no history exists", func(t *testing.T) {
		// when
		alloc, err := Recommend(50000, map[string]float64{})

		// then
		require.NoError(t, err)
		assert.True(t, alloc.ColdStart)
		assert.Equal(t, map[string]float64{
			CategoryFood:      15,
			CategoryTransport: 10,
			CategoryRent:      25,
			CategoryShopping:  15,
			CategoryOther:     15,
			CategorySavings:   20,
		}, alloc.Budget)
		for category, value := range alloc.Actual {
			assert.Zerof(t, value, "actual for %s should be zero", category)
		}
	})

	t.Run("should ignore categories outside the allowed set", func(t *testing.T) {
		// given only an unknown category was observed
		observed := map[string]float64{"Crypto": 12.5}

		// when
		alloc, err := Recommend(50000, observed)

		// then it is still a cold start
		require.NoError(t, err)
		assert.True(t, alloc.ColdStart)
	})
}

func TestRecommend_GroupRedistribution(t *testing.T) {
	t.Run("should redistribute the needs target proportionally to habits", func(t *testing.T) {
		// given
		observed := map[string]float64{
			CategoryFood:      20,
			CategoryTransport: 10,
			CategoryRent:      0,
		}

		// when
		alloc, err := Recommend(10000, observed)

		// then 50% is split 20:10:0
		require.NoError(t, err)
		assert.Equal(t, 33.3, alloc.Budget[CategoryFood])
		assert.Equal(t, 16.7, alloc.Budget[CategoryTransport])
		assert.Equal(t, 0.0, alloc.Budget[CategoryRent])
		assert.Equal(t, 30.0, alloc.CurrentNeeds)
	})

	t.Run("should pin savings at the target regardless of observed savings", func(t *testing.T) {
		// given savings observed at 5%
		alloc, err := Recommend(10000, map[string]float64{CategorySavings: 5})
		require.NoError(t, err)
		assert.Equal(t, 20.0, alloc.Budget[CategorySavings])
		assert.Equal(t, 5.0, alloc.CurrentSavings)

		// given no observed savings at all but some other spend
		alloc, err = Recommend(10000, map[string]float64{CategoryFood: 10})
		require.NoError(t, err)
		assert.Equal(t, 20.0, alloc.Budget[CategorySavings])
		assert.Equal(t, 0.0, alloc.CurrentSavings)
	})

	t.Run("should back-fill never-seen categories with an even group split", func(t *testing.T) {
		// given only Food was ever observed
		alloc, err := Recommend(10000, map[string]float64{CategoryFood: 12})

		// then
		require.NoError(t, err)
		assert.Equal(t, 50.0, alloc.Budget[CategoryFood])
		assert.InDelta(t, 50.0/3, alloc.Budget[CategoryTransport], 1e-9)
		assert.InDelta(t, 50.0/3, alloc.Budget[CategoryRent], 1e-9)
		assert.Equal(t, 15.0, alloc.Budget[CategoryShopping])
		assert.Equal(t, 15.0, alloc.Budget[CategoryOther])
		assert.Equal(t, 20.0, alloc.Budget[CategorySavings])
	})

	t.Run("should not normalize rounding drift across groups", func(t *testing.T) {
		// given a split that rounds to a sum different from the target
		observed := map[string]float64{
			CategoryFood:      10,
			CategoryTransport: 10,
			CategoryRent:      10,
		}

		// when
		alloc, err := Recommend(10000, observed)

		// then each needs category gets round(50/3) = 16.7 and the drift stays
		require.NoError(t, err)
		sum := alloc.Budget[CategoryFood] + alloc.Budget[CategoryTransport] + alloc.Budget[CategoryRent]
		assert.Equal(t, 16.7, alloc.Budget[CategoryFood])
		assert.InDelta(t, 50.1, sum, 1e-9)
	})
}

func TestRecommend_InvalidIncome(t *testing.T) {
	for _, income := range []float64{0, -100} {
		_, err := Recommend(income, map[string]float64{CategoryFood: 10})
		assert.ErrorIs(t, err, ErrValidation)
	}
}
