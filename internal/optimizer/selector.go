package optimizer

import (
	"sort"

	"github.com/iwvelando/travel-optimizer/internal/travel"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
)

// The selectors assume normalized candidates (see internal/travel); the
// optimizer facade normalizes every pool before calling them. When nothing in
// a pool fits the category slice they fall back to the globally cheapest
// candidate rather than returning nothing, so a caller always gets a
// suggestion as long as any candidate exists. Ties go to the earliest
// candidate in input order.

// SelectFlight picks the flight minimizing price/budget + stops*0.1 among the
// affordable candidates.
func SelectFlight(flights []travel.FlightOption, budget float64) *travel.FlightOption {
	if len(flights) == 0 {
		return nil
	}

	var affordable []travel.FlightOption
	if budget > 0 {
		for _, flight := range flights {
			if flight.Price <= budget {
				affordable = append(affordable, flight)
			}
		}
	}

	if len(affordable) == 0 {
		cheapest := flights[0]
		for _, flight := range flights[1:] {
			if flight.Price < cheapest.Price {
				cheapest = flight
			}
		}
		return &cheapest
	}

	best := affordable[0]
	bestScore := flightSelectionScore(best, budget)
	for _, flight := range affordable[1:] {
		if score := flightSelectionScore(flight, budget); score < bestScore {
			best = flight
			bestScore = score
		}
	}
	return &best
}

// flightSelectionScore is a cost function: lower price ratio and fewer stops
// both reduce it.
func flightSelectionScore(flight travel.FlightOption, budget float64) float64 {
	return flight.Price/budget + float64(flight.Outbound.Stops)*constants.StopPenalty
}

// SelectHotel picks the hotel maximizing rating/(total/budget) among the
// affordable candidates. Note the inverted direction relative to flights:
// hotels reward quality per dollar, flights penalize cost and inconvenience.
func SelectHotel(hotels []travel.HotelOption, budget float64) *travel.HotelOption {
	if len(hotels) == 0 {
		return nil
	}

	var affordable []travel.HotelOption
	if budget > 0 {
		for _, hotel := range hotels {
			if hotel.Price.Total <= budget {
				affordable = append(affordable, hotel)
			}
		}
	}

	if len(affordable) == 0 {
		cheapest := hotels[0]
		for _, hotel := range hotels[1:] {
			if hotel.Price.Total < cheapest.Price.Total {
				cheapest = hotel
			}
		}
		return &cheapest
	}

	best := affordable[0]
	bestScore := hotelSelectionScore(best, budget)
	for _, hotel := range affordable[1:] {
		if score := hotelSelectionScore(hotel, budget); score > bestScore {
			best = hotel
			bestScore = score
		}
	}
	return &best
}

// hotelSelectionScore is a benefit function: higher rating and lower price
// ratio both increase it.
func hotelSelectionScore(hotel travel.HotelOption, budget float64) float64 {
	rating := constants.DefaultHotelRating
	if hotel.Rating != nil {
		rating = *hotel.Rating
	}
	return rating / (hotel.Price.Total / budget)
}

// SelectActivities greedily accepts activities in descending personalization
// order while the running cost stays within the category slice and the count
// stays within two per trip day. A candidate that would blow the budget is
// skipped, not terminal: later cheaper candidates may still fit.
func SelectActivities(activities []travel.ActivityOption, budget float64, durationDays int) []travel.ActivityOption {
	sorted := make([]travel.ActivityOption, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return personalization(sorted[i]) > personalization(sorted[j])
	})

	maxActivities := durationDays * constants.ActivitiesPerDay
	var selected []travel.ActivityOption
	totalCost := 0.0

	for _, activity := range sorted {
		if len(selected) >= maxActivities {
			break
		}
		if totalCost+activity.Price <= budget {
			selected = append(selected, activity)
			totalCost += activity.Price
		}
	}

	return selected
}

func personalization(activity travel.ActivityOption) float64 {
	if activity.PersonalizationScore == nil {
		return constants.DefaultPersonalizationScore
	}
	return *activity.PersonalizationScore
}
