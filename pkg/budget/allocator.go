package budget

import (
	"errors"
	"fmt"
	"math"
)

var ErrValidation = errors.New("validation failed")

// Recommend derives a recommended budget from observed percent-of-income
// spending, reconciled against the 50/30/20 target split. Each group's target
// is redistributed proportionally to current habits within the group; the
// savings group is always pinned at its full target. Categories never seen in
// the observed spend are back-filled with an even split of their group's
// target. Percentages are rounded per category, so group outputs may not sum
// exactly to their target after rounding.
func Recommend(income float64, observed map[string]float64) (Allocation, error) {
	if income <= 0 {
		return Allocation{}, fmt.Errorf("%w: income must be positive", ErrValidation)
	}

	// Restrict to the allowed category set.
	actual := make(map[string]float64)
	for _, category := range AllowedCategories() {
		if value, ok := observed[category]; ok {
			actual[category] = value
		}
	}

	// Cold start: no spending history at all.
	if len(actual) == 0 {
		return defaultAllocation(), nil
	}

	budget := make(map[string]float64)
	currentNeeds := allocateGroup(budget, actual, NeedsCategories, TargetNeeds)
	currentWants := allocateGroup(budget, actual, WantsCategories, TargetWants)

	// Savings is a single-category group and always receives the full target,
	// regardless of how much was actually saved.
	currentSavings := 0.0
	for _, category := range SavingsCategories {
		if value, ok := actual[category]; ok {
			currentSavings += value
			budget[category] = TargetSavings
		}
	}

	// Back-fill categories that never appeared in the observed spend.
	for _, category := range AllowedCategories() {
		if _, ok := budget[category]; !ok {
			target, size := groupOf(category)
			budget[category] = target / float64(size)
		}
	}

	return Allocation{
		Budget:         budget,
		Actual:         actual,
		CurrentNeeds:   currentNeeds,
		CurrentWants:   currentWants,
		CurrentSavings: currentSavings,
	}, nil
}

// allocateGroup distributes the group's target proportionally among the
// categories observed in it and returns the group's observed total.
func allocateGroup(budget map[string]float64, actual map[string]float64, group []string, target float64) float64 {
	groupTotal := 0.0
	members := make([]string, 0, len(group))
	for _, category := range group {
		if value, ok := actual[category]; ok {
			groupTotal += value
			members = append(members, category)
		}
	}
	for _, category := range members {
		if groupTotal > 0 {
			budget[category] = round1(actual[category] / groupTotal * target)
		} else {
			budget[category] = 0
		}
	}
	return groupTotal
}

// defaultAllocation is the cold-start recommendation. It matches the target
// group splits exactly.
func defaultAllocation() Allocation {
	budget := map[string]float64{
		CategoryFood:      15,
		CategoryTransport: 10,
		CategoryRent:      25,
		CategoryShopping:  15,
		CategoryOther:     15,
		CategorySavings:   20,
	}
	actual := make(map[string]float64, len(budget))
	for category := range budget {
		actual[category] = 0
	}
	return Allocation{
		Budget:    budget,
		Actual:    actual,
		ColdStart: true,
	}
}

func groupOf(category string) (target float64, size int) {
	for _, c := range NeedsCategories {
		if c == category {
			return TargetNeeds, len(NeedsCategories)
		}
	}
	for _, c := range WantsCategories {
		if c == category {
			return TargetWants, len(WantsCategories)
		}
	}
	return TargetSavings, len(SavingsCategories)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
