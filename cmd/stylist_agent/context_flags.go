package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// contextFlags holds the request-context flag values shared by the
// recommend, filter, and analyze commands.
type contextFlags struct {
	occasion     string
	timeOfDay    string
	season       string
	temperature  float64
	condition    string
	humidity     float64
	hasWeather   bool
	seasonalPref bool
	colorTheory  bool
}

// buildContext converts flag values into a request context. hasWeather must
// be true only when the temperature flag was explicitly set; a zero
// temperature is a meaningful value, not an absent one.
func buildContext(f contextFlags) (*types.RequestContext, error) {
	reqCtx := &types.RequestContext{
		Occasion:           strings.ToLower(strings.TrimSpace(f.occasion)),
		TimeOfDay:          types.TimeOfDay(strings.ToLower(strings.TrimSpace(f.timeOfDay))),
		Season:             types.Season(strings.ToLower(strings.TrimSpace(f.season))),
		SeasonalPreference: f.seasonalPref,
		ColorTheoryMode:    f.colorTheory,
	}

	if f.hasWeather {
		reqCtx.Weather = &types.Weather{
			TemperatureC: f.temperature,
			Condition:    strings.ToLower(strings.TrimSpace(f.condition)),
			Humidity:     f.humidity,
		}
	}

	if err := reqCtx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid context: %w", err)
	}
	return reqCtx, nil
}

// selectItems resolves a comma-separated id list against the wardrobe.
// Every id must match exactly one item.
func selectItems(items []types.WardrobeItem, idList string) ([]types.WardrobeItem, error) {
	byID := make(map[string]types.WardrobeItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var selected []types.WardrobeItem
	for _, raw := range strings.Split(idList, ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("item %q not found in wardrobe", id)
		}
		selected = append(selected, item)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no item ids given")
	}
	return selected, nil
}
