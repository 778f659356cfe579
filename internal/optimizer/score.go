package optimizer

import (
	"math"

	"github.com/iwvelando/travel-optimizer/internal/travel"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
	"github.com/iwvelando/travel-optimizer/pkg/mathutil"
)

// Value score component ceilings. The components are additive and
// independently capped, so no single component can push the total past 100.
const (
	flightScoreMax     = 20.0
	hotelScoreMax      = 30.0
	activityScoreMax   = 50.0
	maxComfortableStop = 3.0
)

// ScorePlan computes the 0-100 experiential value of a fixed selection. It is
// deliberately price-agnostic: cost shows up in the plan's balance, not here.
// Absent selections contribute zero. The result is rounded to two decimals.
func ScorePlan(flight *travel.FlightOption, hotel *travel.HotelOption, activities []travel.ActivityOption) float64 {
	score := 0.0

	if flight != nil {
		directness := (maxComfortableStop - float64(flight.Outbound.Stops)) / maxComfortableStop
		score += mathutil.Clamp(directness, 0, 1) * flightScoreMax
	}

	if hotel != nil {
		rating := constants.DefaultHotelRating
		if hotel.Rating != nil {
			rating = *hotel.Rating
		}
		score += mathutil.Clamp(rating/5.0, 0, 1) * hotelScoreMax
	}

	if len(activities) > 0 {
		sum := 0.0
		for _, activity := range activities {
			sum += personalization(activity)
		}
		avgPersonalization := mathutil.Clamp(sum/float64(len(activities)), 0, 1)
		countScore := math.Min(float64(len(activities))/constants.ActivityCountSaturation, 1.0)
		score += avgPersonalization*activityScoreMax/2 + countScore*activityScoreMax/2
	}

	return mathutil.Round(score)
}
