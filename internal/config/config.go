// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/travel-optimizer/internal/travel"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration errors are fatal: a malformed comfort level or category split
// would silently corrupt every downstream budget.
var (
	// ErrUnknownComfortLevel indicates a comfort level with no configured
	// multiplier.
	ErrUnknownComfortLevel = errors.New("unknown comfort level")

	// ErrBadAllocationSplit indicates category percentages that do not sum
	// to 1.0.
	ErrBadAllocationSplit = errors.New("default allocation percentages must sum to 1.0")
)

// Configuration holds all configuration for travel-optimizer.
type Configuration struct {
	Budget      BudgetConfig      `yaml:"budget,omitempty" mapstructure:"budget"`
	Feasibility FeasibilityConfig `yaml:"feasibility,omitempty" mapstructure:"feasibility"`
	Logging     LoggingConfig     `yaml:"logging,omitempty" mapstructure:"logging"`
	Output      OutputConfig      `yaml:"output,omitempty" mapstructure:"output"`
	Server      ServerConfig      `yaml:"server,omitempty" mapstructure:"server"`
}

// BudgetConfig holds the comfort multipliers and the default category split
// used by the allocation calculator.
type BudgetConfig struct {
	ComfortLevels     map[string]float64 `yaml:"comfortLevels,omitempty" mapstructure:"comfortLevels"`
	DefaultAllocation map[string]float64 `yaml:"defaultAllocation,omitempty" mapstructure:"defaultAllocation"`
	AlternativeLevels []string           `yaml:"alternativeLevels,omitempty" mapstructure:"alternativeLevels"`
}

// FeasibilityConfig holds the per-person/per-day heuristic minimums used by
// the feasibility analyzer.
type FeasibilityConfig struct {
	MinFlightCost    float64 `yaml:"minFlightCost,omitempty" mapstructure:"minFlightCost"`
	MinHotelPerNight float64 `yaml:"minHotelPerNight,omitempty" mapstructure:"minHotelPerNight"`
	MinDailyFood     float64 `yaml:"minDailyFood,omitempty" mapstructure:"minDailyFood"`
	MinDailyMisc     float64 `yaml:"minDailyMisc,omitempty" mapstructure:"minDailyMisc"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address        string   `yaml:"address,omitempty" mapstructure:"address"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty" mapstructure:"allowedOrigins"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Normalize()
	return &configuration, nil
}

// LoadRequest loads a YAML-formatted trip request (budget, trip shape, and
// candidate pools) from the given path.
func LoadRequest(requestPath string) (*travel.Request, error) {
	v := viper.New()
	v.SetConfigFile(requestPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading request file, %s", err)
	}

	var request travel.Request
	err := v.Unmarshal(&request)
	if err != nil {
		return nil, fmt.Errorf("unable to decode request into struct, %s", err)
	}

	return &request, nil
}

// Normalize applies documented defaults to any section the config file left
// unset. The result is treated as immutable for the lifetime of an optimizer.
func (c *Configuration) Normalize() {
	if c == nil {
		return
	}

	if len(c.Budget.ComfortLevels) == 0 {
		c.Budget.ComfortLevels = map[string]float64{
			constants.ComfortBudget:   0.8,
			constants.ComfortStandard: 1.0,
			constants.ComfortComfort:  1.3,
			constants.ComfortLuxury:   1.8,
		}
	}

	if len(c.Budget.DefaultAllocation) == 0 {
		c.Budget.DefaultAllocation = map[string]float64{
			constants.CategoryTransport:     0.15,
			constants.CategoryAccommodation: 0.35,
			constants.CategoryActivities:    0.30,
			constants.CategoryFood:          0.15,
			constants.CategoryMiscellaneous: 0.05,
		}
	}

	if len(c.Budget.AlternativeLevels) == 0 {
		c.Budget.AlternativeLevels = []string{
			constants.ComfortBudget,
			constants.ComfortStandard,
			constants.ComfortComfort,
		}
	}

	if c.Feasibility.MinFlightCost <= 0 {
		c.Feasibility.MinFlightCost = 200
	}
	if c.Feasibility.MinHotelPerNight <= 0 {
		c.Feasibility.MinHotelPerNight = 50
	}
	if c.Feasibility.MinDailyFood <= 0 {
		c.Feasibility.MinDailyFood = 30
	}
	if c.Feasibility.MinDailyMisc <= 0 {
		c.Feasibility.MinDailyMisc = 20
	}

	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
}

// Validate returns an error when the budget configuration is malformed.
func (c *Configuration) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	c.Normalize()

	sum := 0.0
	for category, percentage := range c.Budget.DefaultAllocation {
		if percentage < 0 {
			return fmt.Errorf("category %s has negative percentage %.4f", category, percentage)
		}
		if !knownCategory(category) {
			return fmt.Errorf("category %q is not recognized", category)
		}
		sum += percentage
	}
	for _, category := range constants.Categories {
		if _, ok := c.Budget.DefaultAllocation[category]; !ok {
			return fmt.Errorf("category %s is missing from the default allocation", category)
		}
	}
	if math.Abs(sum-1.0) > constants.AllocationTolerance {
		return fmt.Errorf("%w, got %.6f", ErrBadAllocationSplit, sum)
	}

	for level, multiplier := range c.Budget.ComfortLevels {
		if multiplier < 0 {
			return fmt.Errorf("comfort level %s has negative multiplier %.4f", level, multiplier)
		}
	}

	for _, level := range c.Budget.AlternativeLevels {
		if _, ok := c.Budget.ComfortLevels[level]; !ok {
			return fmt.Errorf("%w: alternative level %q has no configured multiplier", ErrUnknownComfortLevel, level)
		}
	}

	return nil
}

// Multiplier resolves a comfort level to its configured multiplier. Unknown
// levels fail loudly rather than silently defaulting to 1.0.
func (b BudgetConfig) Multiplier(level string) (float64, error) {
	multiplier, ok := b.ComfortLevels[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownComfortLevel, level)
	}
	return multiplier, nil
}

func knownCategory(category string) bool {
	for _, known := range constants.Categories {
		if category == known {
			return true
		}
	}
	return false
}
