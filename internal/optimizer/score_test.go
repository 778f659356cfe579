package optimizer

import (
	"testing"

	"github.com/iwvelando/travel-optimizer/internal/travel"
)

func TestScorePlanComponents(t *testing.T) {
	nonstop := &travel.FlightOption{Price: 450, Outbound: travel.FlightLeg{Stops: 0}}
	oneStop := &travel.FlightOption{Price: 450, Outbound: travel.FlightLeg{Stops: 1}}
	topHotel := &travel.HotelOption{Rating: floatPtr(5.0), Price: travel.HotelPrice{Total: 600}}
	midHotel := &travel.HotelOption{Rating: floatPtr(4.0), Price: travel.HotelPrice{Total: 600}}

	tenActivities := make([]travel.ActivityOption, 10)
	for i := range tenActivities {
		tenActivities[i] = travel.ActivityOption{Price: 20, PersonalizationScore: floatPtr(1.0)}
	}

	tests := []struct {
		name       string
		flight     *travel.FlightOption
		hotel      *travel.HotelOption
		activities []travel.ActivityOption
		want       float64
	}{
		{"Nothing selected", nil, nil, nil, 0},
		{"Nonstop flight only", nonstop, nil, nil, 20},
		{"One-stop flight only", oneStop, nil, nil, 13.33},
		{"Top hotel only", nil, topHotel, nil, 30},
		{"Mid hotel only", nil, midHotel, nil, 24},
		{
			"Two perfect activities",
			nil, nil,
			[]travel.ActivityOption{
				{Price: 20, PersonalizationScore: floatPtr(1.0)},
				{Price: 20, PersonalizationScore: floatPtr(1.0)},
			},
			30, // 1.0*25 + 2/10*25
		},
		{"Saturated activity count", nil, nil, tenActivities, 50},
		{"Everything maxed", nonstop, topHotel, tenActivities, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScorePlan(tt.flight, tt.hotel, tt.activities); got != tt.want {
				t.Errorf("ScorePlan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorePlanBounds(t *testing.T) {
	manyStops := &travel.FlightOption{Outbound: travel.FlightLeg{Stops: 7}}
	overRated := &travel.HotelOption{Rating: floatPtr(9.9)}
	overRanked := make([]travel.ActivityOption, 30)
	for i := range overRanked {
		overRanked[i] = travel.ActivityOption{PersonalizationScore: floatPtr(1.5)}
	}

	flights := []*travel.FlightOption{nil, manyStops, {Outbound: travel.FlightLeg{Stops: 0}}}
	hotels := []*travel.HotelOption{nil, overRated, {Rating: floatPtr(0)}}
	activitySets := [][]travel.ActivityOption{nil, overRanked, {{PersonalizationScore: floatPtr(0)}}}

	for _, flight := range flights {
		for _, hotel := range hotels {
			for _, activities := range activitySets {
				got := ScorePlan(flight, hotel, activities)
				if got < 0 || got > 100 {
					t.Errorf("ScorePlan() = %v out of [0, 100]", got)
				}
			}
		}
	}
}

// Component ceilings hold even for inputs beyond their documented ranges: a
// seven-stop flight contributes zero rather than a negative component.
func TestScorePlanExcessStopsFloorAtZero(t *testing.T) {
	manyStops := &travel.FlightOption{Outbound: travel.FlightLeg{Stops: 7}}
	hotel := &travel.HotelOption{Rating: floatPtr(4.0)}

	withFlight := ScorePlan(manyStops, hotel, nil)
	withoutFlight := ScorePlan(nil, hotel, nil)
	if withFlight != withoutFlight {
		t.Errorf("excess stops changed score: %v vs %v", withFlight, withoutFlight)
	}
}

func TestScorePlanPriceAgnostic(t *testing.T) {
	cheap := &travel.FlightOption{Price: 100, Outbound: travel.FlightLeg{Stops: 1}}
	expensive := &travel.FlightOption{Price: 9000, Outbound: travel.FlightLeg{Stops: 1}}

	if ScorePlan(cheap, nil, nil) != ScorePlan(expensive, nil, nil) {
		t.Errorf("score should not depend on price")
	}
}
