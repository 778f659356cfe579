// Package travel defines the candidate option types supplied by the external
// data-collection and personalization collaborators, plus the trip request
// envelope that carries them into the optimizer.
package travel

// FlightLeg describes one direction of a flight offer.
type FlightLeg struct {
	Stops    int    `json:"stops" mapstructure:"stops"`
	Duration string `json:"duration,omitempty" mapstructure:"duration"`
}

// FlightOption is a flight candidate as fetched by the data collector.
type FlightOption struct {
	Airline  string    `json:"airline,omitempty" mapstructure:"airline"`
	Price    float64   `json:"price" mapstructure:"price"`
	Outbound FlightLeg `json:"outbound" mapstructure:"outbound"`
}

// HotelPrice carries both the nightly rate and the total for the full stay.
type HotelPrice struct {
	PerNight float64 `json:"per_night" mapstructure:"per_night"`
	Total    float64 `json:"total" mapstructure:"total"`
}

// HotelOption is a hotel candidate as fetched by the data collector. Rating is
// a pointer so that an absent rating can be distinguished from a zero one;
// normalization resolves it to a default.
type HotelOption struct {
	Name   string     `json:"name,omitempty" mapstructure:"name"`
	Rating *float64   `json:"rating,omitempty" mapstructure:"rating"`
	Price  HotelPrice `json:"price" mapstructure:"price"`
}

// ActivityOption is an activity candidate, optionally pre-annotated with a
// personalization score by the external ranker.
type ActivityOption struct {
	Name                 string   `json:"name,omitempty" mapstructure:"name"`
	Price                float64  `json:"price" mapstructure:"price"`
	Rating               float64  `json:"rating,omitempty" mapstructure:"rating"`
	PersonalizationScore *float64 `json:"personalization_score,omitempty" mapstructure:"personalization_score"`
}

// Preferences holds the user options the optimizer recognizes. Unknown keys in
// the source document are ignored.
type Preferences struct {
	ComfortLevel string `json:"comfort_level,omitempty" mapstructure:"comfort_level"`
}

// Request is one complete optimization request: budget, trip shape, and the
// pre-fetched candidate pools.
type Request struct {
	TotalBudget  float64          `json:"total_budget" mapstructure:"total_budget"`
	DurationDays int              `json:"duration_days" mapstructure:"duration_days"`
	Destination  string           `json:"destination,omitempty" mapstructure:"destination"`
	GroupSize    int              `json:"group_size,omitempty" mapstructure:"group_size"`
	Preferences  Preferences      `json:"preferences" mapstructure:"preferences"`
	Flights      []FlightOption   `json:"flights" mapstructure:"flights"`
	Hotels       []HotelOption    `json:"hotels" mapstructure:"hotels"`
	Activities   []ActivityOption `json:"activities" mapstructure:"activities"`
}
