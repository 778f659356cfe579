package travel

import "github.com/iwvelando/travel-optimizer/pkg/constants"

// Normalization fills documented defaults once, up front, so the selection and
// scoring algorithms can assume fully populated records. Each function returns
// a copy; caller-owned slices are never mutated.

// NormalizeFlights copies the flight pool, flooring negative stop counts at
// zero.
func NormalizeFlights(flights []FlightOption) []FlightOption {
	normalized := make([]FlightOption, len(flights))
	copy(normalized, flights)
	for i := range normalized {
		if normalized[i].Outbound.Stops < 0 {
			normalized[i].Outbound.Stops = 0
		}
	}
	return normalized
}

// NormalizeHotels copies the hotel pool, defaulting an absent rating and
// deriving the stay total from the nightly rate when the collector only
// provided per-night pricing.
func NormalizeHotels(hotels []HotelOption, nights int) []HotelOption {
	normalized := make([]HotelOption, len(hotels))
	copy(normalized, hotels)
	for i := range normalized {
		if normalized[i].Rating == nil {
			rating := constants.DefaultHotelRating
			normalized[i].Rating = &rating
		}
		if normalized[i].Price.Total == 0 && normalized[i].Price.PerNight > 0 && nights > 0 {
			normalized[i].Price.Total = normalized[i].Price.PerNight * float64(nights)
		}
	}
	return normalized
}

// NormalizeActivities copies the activity pool, defaulting an absent
// personalization score to 0.5 so unranked activities sort mid-field rather
// than last.
func NormalizeActivities(activities []ActivityOption) []ActivityOption {
	normalized := make([]ActivityOption, len(activities))
	copy(normalized, activities)
	for i := range normalized {
		if normalized[i].PersonalizationScore == nil {
			score := constants.DefaultPersonalizationScore
			normalized[i].PersonalizationScore = &score
		}
	}
	return normalized
}
