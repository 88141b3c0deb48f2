package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outfit-stylist/internal/types"
)

func TestBuildContext(t *testing.T) {
	reqCtx, err := buildContext(contextFlags{
		occasion:    " Work ",
		timeOfDay:   "Morning",
		season:      "fall",
		temperature: 5,
		condition:   "Rain",
		hasWeather:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "work", reqCtx.Occasion)
	assert.Equal(t, types.TimeMorning, reqCtx.TimeOfDay)
	assert.Equal(t, types.SeasonFall, reqCtx.Season)
	require.NotNil(t, reqCtx.Weather)
	assert.Equal(t, 5.0, reqCtx.Weather.TemperatureC)
	assert.Equal(t, "rain", reqCtx.Weather.Condition)
}

func TestBuildContext_NoWeatherUnlessSet(t *testing.T) {
	reqCtx, err := buildContext(contextFlags{occasion: "casual"})
	require.NoError(t, err)
	assert.Nil(t, reqCtx.Weather)
}

func TestBuildContext_ZeroTemperatureIsWeather(t *testing.T) {
	reqCtx, err := buildContext(contextFlags{occasion: "casual", hasWeather: true})
	require.NoError(t, err)
	require.NotNil(t, reqCtx.Weather)
	assert.Equal(t, 0.0, reqCtx.Weather.TemperatureC)
}

func TestBuildContext_RequiresOccasion(t *testing.T) {
	_, err := buildContext(contextFlags{})
	assert.Error(t, err)
}

func TestBuildContext_RejectsBadTimeOfDay(t *testing.T) {
	_, err := buildContext(contextFlags{occasion: "casual", timeOfDay: "dawn"})
	assert.Error(t, err)
}

func TestSelectItems(t *testing.T) {
	items := []types.WardrobeItem{
		{ID: "tee", Category: "tops", Colors: []string{"white"}},
		{ID: "jeans", Category: "bottoms", Colors: []string{"blue"}},
		{ID: "boots", Category: "shoes", Colors: []string{"black"}},
	}

	selected, err := selectItems(items, "tee, jeans")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "tee", selected[0].ID)
	assert.Equal(t, "jeans", selected[1].ID)
}

func TestSelectItems_UnknownID(t *testing.T) {
	items := []types.WardrobeItem{{ID: "tee", Category: "tops", Colors: []string{"white"}}}

	_, err := selectItems(items, "tee,hat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"hat"`)
}

func TestSelectItems_Empty(t *testing.T) {
	_, err := selectItems(nil, " , ")
	assert.Error(t, err)
}
