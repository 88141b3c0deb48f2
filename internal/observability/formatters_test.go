package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outfit-stylist/internal/types"
)

func TestPrintContext(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContext(&types.RequestContext{
		Occasion:  "date",
		TimeOfDay: types.TimeEvening,
		Season:    types.SeasonFall,
		Weather:   &types.Weather{TemperatureC: 12, Condition: "clear"},
	})

	out := buf.String()
	assert.Contains(t, out, "REQUEST CONTEXT")
	assert.Contains(t, out, "date")
	assert.Contains(t, out, "evening")
	assert.Contains(t, out, "fall")
	assert.Contains(t, out, "12°C")
}

func TestPrintContext_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContext(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFilterSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	kept := []types.WardrobeItem{
		{ID: "1", Name: "White Tee", Category: "tops", Colors: []string{"white"}},
		{ID: "2", Name: "Jeans", Category: "bottoms", Colors: []string{"blue"}},
	}
	p.PrintFilterSummary(5, kept)

	out := buf.String()
	assert.Contains(t, out, "Wardrobe items: 5")
	assert.Contains(t, out, "After filtering: 2")
	assert.Contains(t, out, "White Tee")
}

func TestPrintFilterSummary_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	kept := make([]types.WardrobeItem, 8)
	for i := range kept {
		kept[i] = types.WardrobeItem{ID: "x", Name: "Item", Category: "tops"}
	}
	p.PrintFilterSummary(10, kept)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{
			Description: "Casual look: White Tee + Jeans",
			Analysis:    types.OutfitAnalysis{OverallScore: 0.82, HarmonyType: "neutral"},
			Reasoning:   []string{"Neutral base keeps the palette grounded"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "0.82")
	assert.Contains(t, out, "neutral")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)

	assert.Contains(t, buf.String(), "No viable outfits")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.OutfitAnalysis{
		OverallScore:   0.75,
		ColorHarmony:   0.8,
		HarmonyType:    "complementary",
		OccasionFit:    0.9,
		StyleCoherence: 1.0,
		Versatility:    0.6,
		ColorStory:     "Blue and orange play off each other.",
		Improvements:   []string{"Add an accessory for polish"},
	})

	out := buf.String()
	assert.Contains(t, out, "OUTFIT ANALYSIS")
	assert.Contains(t, out, "0.75")
	assert.Contains(t, out, "complementary")
	assert.Contains(t, out, "Suggestions:")
}

func TestPrintBox_TruncatesWideLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 120))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
