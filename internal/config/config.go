// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Wardrobe string `json:"wardrobe,omitempty"` // Path to wardrobe JSON file
	Profile  string `json:"profile,omitempty"`  // Path to style profile JSON file

	// Request context
	Occasion  string `json:"occasion,omitempty"`    // Occasion to dress for
	TimeOfDay string `json:"time_of_day,omitempty"` // morning, afternoon, evening or night
	Season    string `json:"season,omitempty"`      // Season override (spring, summer, fall, winter)

	// Engine limits
	MaxRecommendations int     `json:"max_recommendations,omitempty"` // Maximum recommendations returned
	MaxCombinations    int     `json:"max_combinations,omitempty"`    // Maximum candidate outfits generated
	DiversityFactor    float64 `json:"diversity_factor,omitempty"`    // Item-overlap diversity factor (0.0-1.0)

	// Behavior
	UserID      string `json:"user_id,omitempty"`      // User UUID (required for DB-based runs)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	CacheTTL    int    `json:"cache_ttl,omitempty"`    // Recommendation cache TTL in seconds
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("config error: 'max_recommendations' must be non-negative")
	}
	if c.MaxCombinations < 0 {
		return fmt.Errorf("config error: 'max_combinations' must be non-negative")
	}
	if c.DiversityFactor < 0 || c.DiversityFactor > 1 {
		return fmt.Errorf("config error: 'diversity_factor' must be between 0.0 and 1.0")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config error: 'cache_ttl' must be non-negative")
	}

	if c.Wardrobe != "" {
		if _, err := os.Stat(c.Wardrobe); os.IsNotExist(err) {
			return fmt.Errorf("config error: wardrobe file not found: %s", c.Wardrobe)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Wardrobe == "" {
		result.Wardrobe = defaults.Wardrobe
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Occasion == "" {
		result.Occasion = defaults.Occasion
	}
	if result.TimeOfDay == "" {
		result.TimeOfDay = defaults.TimeOfDay
	}
	if result.Season == "" {
		result.Season = defaults.Season
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxRecommendations == 0 {
		result.MaxRecommendations = defaults.MaxRecommendations
	}
	if result.MaxCombinations == 0 {
		result.MaxCombinations = defaults.MaxCombinations
	}
	if result.DiversityFactor == 0 {
		result.DiversityFactor = defaults.DiversityFactor
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
