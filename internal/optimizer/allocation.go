package optimizer

import (
	"github.com/iwvelando/travel-optimizer/pkg/constants"
)

// Allocation maps each budget category to a monetary amount. The calculator
// guarantees the amounts sum to the input budget.
type Allocation map[string]float64

// Total returns the sum of every category amount.
func (a Allocation) Total() float64 {
	sum := 0.0
	for _, amount := range a {
		sum += amount
	}
	return sum
}

// CalculateAllocation splits a total budget across the spending categories for
// one comfort level. The comfort multiplier weights transport and
// accommodation; the result is then renormalized so the category amounts sum
// to the total budget regardless of the multiplier. Unknown comfort levels
// return config.ErrUnknownComfortLevel.
func (o *Optimizer) CalculateAllocation(totalBudget float64, comfortLevel string, durationDays int) (Allocation, error) {
	multiplier, err := o.conf.Budget.Multiplier(comfortLevel)
	if err != nil {
		return nil, err
	}

	allocation := make(Allocation, len(constants.Categories))
	for _, category := range constants.Categories {
		amount := totalBudget * o.conf.Budget.DefaultAllocation[category]
		if category == constants.CategoryAccommodation || category == constants.CategoryTransport {
			amount *= multiplier
		}
		allocation[category] = amount
	}

	// Renormalize so the categories sum exactly to the budget. A zero budget
	// yields an all-zero allocation; guard the division.
	totalAllocated := allocation.Total()
	if totalAllocated > 0 {
		factor := totalBudget / totalAllocated
		for category := range allocation {
			allocation[category] *= factor
		}
	}

	return allocation, nil
}
