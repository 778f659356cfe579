package validation

import (
	"fmt"

	"github.com/iwvelando/travel-optimizer/internal/travel"
)

// ValidateRequest checks a trip request at the API/CLI boundary. The core
// optimizer assumes pre-validated input, so malformed requests are rejected
// here before they reach it.
func ValidateRequest(req *travel.Request) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if req.TotalBudget < 0 {
		return fmt.Errorf("total budget must be non-negative, got %.2f", req.TotalBudget)
	}
	if req.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day, got %d", req.DurationDays)
	}
	for i, flight := range req.Flights {
		if flight.Price < 0 {
			return fmt.Errorf("flight %d has negative price %.2f", i, flight.Price)
		}
	}
	for i, hotel := range req.Hotels {
		if hotel.Price.PerNight < 0 || hotel.Price.Total < 0 {
			return fmt.Errorf("hotel %d has negative price", i)
		}
	}
	for i, activity := range req.Activities {
		if activity.Price < 0 {
			return fmt.Errorf("activity %d has negative price %.2f", i, activity.Price)
		}
	}
	return nil
}
