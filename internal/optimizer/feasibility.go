package optimizer

import (
	"fmt"

	"go.uber.org/zap"
)

// FeasibilityReport is a heuristic sanity check of a budget against the
// configured per-person/per-day minimums, independent of any candidate data.
type FeasibilityReport struct {
	Feasible        bool    `json:"feasible"`
	TotalBudget     float64 `json:"total_budget"`
	PerPersonBudget float64 `json:"per_person_budget"`
	DailyBudget     float64 `json:"daily_budget"`
	MinRequired     float64 `json:"min_required"`
	SurplusDeficit  float64 `json:"surplus_deficit"`
	Recommendation  string  `json:"recommendation"`
}

// AnalyzeFeasibility estimates whether a budget can plausibly cover a trip's
// minimum costs. Group size and duration are floored at one to keep the
// per-person and per-day figures well defined.
func (o *Optimizer) AnalyzeFeasibility(totalBudget float64, destination string, durationDays, groupSize int) FeasibilityReport {
	if durationDays < 1 {
		durationDays = 1
	}
	if groupSize < 1 {
		groupSize = 1
	}

	perPersonBudget := totalBudget / float64(groupSize)
	dailyBudget := perPersonBudget / float64(durationDays)

	heuristics := o.conf.Feasibility
	minRequired := heuristics.MinFlightCost*float64(groupSize) +
		heuristics.MinHotelPerNight*float64(durationDays) +
		(heuristics.MinDailyFood+heuristics.MinDailyMisc)*float64(durationDays)*float64(groupSize)

	feasible := totalBudget >= minRequired

	report := FeasibilityReport{
		Feasible:        feasible,
		TotalBudget:     totalBudget,
		PerPersonBudget: perPersonBudget,
		DailyBudget:     dailyBudget,
		MinRequired:     minRequired,
		SurplusDeficit:  totalBudget - minRequired,
	}

	switch {
	case !feasible:
		report.Recommendation = fmt.Sprintf("Budget is $%.2f short of minimum requirements", minRequired-totalBudget)
	case totalBudget >= minRequired*2:
		report.Recommendation = "Excellent budget for a comfortable trip"
	case totalBudget >= minRequired*1.5:
		report.Recommendation = "Good budget with room for upgrades"
	default:
		report.Recommendation = "Budget is feasible but will be tight"
	}

	o.logger.Debug("feasibility analyzed",
		zap.String("op", "Optimizer.AnalyzeFeasibility"),
		zap.String("destination", destination),
		zap.Bool("feasible", feasible),
		zap.Float64("minRequired", minRequired),
		zap.Float64("dailyBudget", dailyBudget),
	)

	return report
}
