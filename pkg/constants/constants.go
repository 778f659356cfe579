// Package constants provides shared constants for the travel-optimizer application.
package constants

// Budget category names used in allocations and cost reporting.
const (
	CategoryTransport     = "transport"
	CategoryAccommodation = "accommodation"
	CategoryActivities    = "activities"
	CategoryFood          = "food"
	CategoryMiscellaneous = "miscellaneous"
)

// Categories lists every budget category in canonical display order.
var Categories = []string{
	CategoryTransport,
	CategoryAccommodation,
	CategoryActivities,
	CategoryFood,
	CategoryMiscellaneous,
}

// Comfort level names recognized by the allocation calculator.
const (
	ComfortBudget   = "budget"
	ComfortStandard = "standard"
	ComfortComfort  = "comfort"
	ComfortLuxury   = "luxury"
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// AllocationTolerance is the tolerance when checking that category
	// percentages sum to 1.0
	AllocationTolerance = 1e-6
)

// Selection constants
const (
	// ActivitiesPerDay caps selected activities at roughly two per trip day
	ActivitiesPerDay = 2

	// ActivityCountSaturation is the activity count beyond which the value
	// score's quantity component stops growing
	ActivityCountSaturation = 10

	// StopPenalty is the per-stop penalty added to a flight's selection score
	StopPenalty = 0.1

	// DefaultHotelRating is assumed when a hotel arrives without a rating
	DefaultHotelRating = 3.5

	// DefaultPersonalizationScore is assumed when an activity arrives without
	// a ranker annotation
	DefaultPersonalizationScore = 0.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
