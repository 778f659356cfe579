// Package optimizer implements the budget allocation, option selection, and
// value scoring engine for multi-day trip planning.
package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/travel-optimizer/internal/config"
	"github.com/iwvelando/travel-optimizer/internal/travel"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
	"go.uber.org/zap"
)

// Optimizer runs budget optimizations against an immutable configuration.
// Every method is a pure function of its arguments; an Optimizer is safe for
// concurrent use.
type Optimizer struct {
	logger *zap.Logger
	conf   *config.Configuration
}

// Selection holds the chosen options for one plan. Flight and Hotel are nil
// when their candidate pools were empty.
type Selection struct {
	Flight     *travel.FlightOption    `json:"flight"`
	Hotel      *travel.HotelOption     `json:"hotel"`
	Activities []travel.ActivityOption `json:"activities"`
}

// Plan is the terminal output of one optimization pass. It is constructed
// once and never mutated.
type Plan struct {
	TotalBudget  float64    `json:"total_budget"`
	TotalCost    float64    `json:"total_cost"`
	Balance      float64    `json:"balance"`
	Allocation   Allocation `json:"allocation"`
	ActualCosts  Allocation `json:"actual_costs"`
	Selected     Selection  `json:"selected_options"`
	ComfortLevel string     `json:"comfort_level"`
	ValueScore   float64    `json:"value_score"`
}

// Alternative is a plan tagged for side-by-side comparison.
type Alternative struct {
	Plan
	Label       string `json:"label"`
	Description string `json:"description"`
}

var comfortDescriptions = map[string]string{
	constants.ComfortBudget:   "Maximize savings with essential amenities",
	constants.ComfortStandard: "Balance between cost and comfort",
	constants.ComfortComfort:  "Premium experience with better amenities",
	constants.ComfortLuxury:   "Highest quality with luxury services",
}

// NewOptimizer constructs an Optimizer for the provided configuration.
func NewOptimizer(logger *zap.Logger, conf *config.Configuration) (*Optimizer, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{logger: logger, conf: conf}, nil
}

// Optimize produces one complete plan: allocate the budget for the requested
// comfort level, select the best options each category slice affords, then
// report actual costs, balance, and the value score. Empty candidate pools
// degrade to empty selections with zero cost; an over-budget selection
// surfaces as a negative balance, not an error.
func (o *Optimizer) Optimize(req travel.Request) (*Plan, error) {
	comfortLevel := req.Preferences.ComfortLevel
	if comfortLevel == "" {
		comfortLevel = constants.ComfortStandard
	}

	allocation, err := o.CalculateAllocation(req.TotalBudget, comfortLevel, req.DurationDays)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("budget allocated",
		zap.String("op", "Optimizer.Optimize"),
		zap.String("comfortLevel", comfortLevel),
		zap.Float64("transport", allocation[constants.CategoryTransport]),
		zap.Float64("accommodation", allocation[constants.CategoryAccommodation]),
		zap.Float64("activities", allocation[constants.CategoryActivities]),
	)

	flights := travel.NormalizeFlights(req.Flights)
	hotels := travel.NormalizeHotels(req.Hotels, req.DurationDays)
	activities := travel.NormalizeActivities(req.Activities)

	selected := Selection{
		Flight:     SelectFlight(flights, allocation[constants.CategoryTransport]),
		Hotel:      SelectHotel(hotels, allocation[constants.CategoryAccommodation]),
		Activities: SelectActivities(activities, allocation[constants.CategoryActivities], req.DurationDays),
	}

	actualCosts := Allocation{
		constants.CategoryTransport:     0,
		constants.CategoryAccommodation: 0,
		constants.CategoryActivities:    0,
		constants.CategoryFood:          allocation[constants.CategoryFood],
		constants.CategoryMiscellaneous: allocation[constants.CategoryMiscellaneous],
	}
	if selected.Flight != nil {
		actualCosts[constants.CategoryTransport] = selected.Flight.Price
	}
	if selected.Hotel != nil {
		actualCosts[constants.CategoryAccommodation] = selected.Hotel.Price.Total
	}
	for _, activity := range selected.Activities {
		actualCosts[constants.CategoryActivities] += activity.Price
	}

	totalCost := actualCosts.Total()

	plan := &Plan{
		TotalBudget:  req.TotalBudget,
		TotalCost:    totalCost,
		Balance:      req.TotalBudget - totalCost,
		Allocation:   allocation,
		ActualCosts:  actualCosts,
		Selected:     selected,
		ComfortLevel: comfortLevel,
		ValueScore:   ScorePlan(selected.Flight, selected.Hotel, selected.Activities),
	}

	o.logger.Info("optimization complete",
		zap.String("op", "Optimizer.Optimize"),
		zap.String("comfortLevel", comfortLevel),
		zap.Float64("totalCost", plan.TotalCost),
		zap.Float64("balance", plan.Balance),
		zap.Float64("valueScore", plan.ValueScore),
		zap.Int("activitiesSelected", len(selected.Activities)),
	)

	return plan, nil
}

// GenerateAlternatives runs one optimization per configured comfort level and
// returns the labelled plans sorted descending by value score.
func (o *Optimizer) GenerateAlternatives(req travel.Request) ([]Alternative, error) {
	alternatives := make([]Alternative, 0, len(o.conf.Budget.AlternativeLevels))

	for _, level := range o.conf.Budget.AlternativeLevels {
		adjusted := req
		adjusted.Preferences.ComfortLevel = level

		plan, err := o.Optimize(adjusted)
		if err != nil {
			return nil, err
		}

		alternatives = append(alternatives, Alternative{
			Plan:        *plan,
			Label:       titleCase(level),
			Description: comfortDescriptions[level],
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].ValueScore > alternatives[j].ValueScore
	})

	o.logger.Info("generated alternatives",
		zap.String("op", "Optimizer.GenerateAlternatives"),
		zap.Int("count", len(alternatives)),
	)

	return alternatives, nil
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
