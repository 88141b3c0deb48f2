package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outfit-stylist/internal/types"
)

func fixedScorer() *Scorer {
	return &Scorer{Now: func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}}
}

func casualOutfit() *types.CandidateOutfit {
	return outfitOf(
		types.WardrobeItem{
			ID: "tee", Category: "tops", Colors: []string{"white"},
			Style: "casual", Occasions: []string{"casual"}, Seasons: []string{"summer"},
		},
		types.WardrobeItem{
			ID: "jeans", Category: "bottoms", Colors: []string{"blue"},
			Style: "casual", Occasions: []string{"casual"}, Seasons: []string{"all"},
		},
	)
}

func TestScore_OverallInRange(t *testing.T) {
	scorer := fixedScorer()
	contexts := []*types.RequestContext{
		{Occasion: "casual"},
		{Occasion: "work", TimeOfDay: types.TimeMorning},
		{Occasion: "formal", TimeOfDay: types.TimeEvening, Weather: &types.Weather{TemperatureC: 5}},
		{Occasion: "date", SeasonalPreference: true},
	}
	profile := &types.StyleProfile{PreferredStyle: "casual", FavoriteColors: []string{"blue"}}

	for _, ctx := range contexts {
		analysis := scorer.Score(casualOutfit(), profile, ctx)
		assert.GreaterOrEqual(t, analysis.OverallScore, 0.0, "occasion %s", ctx.Occasion)
		assert.LessOrEqual(t, analysis.OverallScore, 1.0, "occasion %s", ctx.Occasion)
	}
}

func TestScore_ConvexCombination(t *testing.T) {
	// With every applicable dimension at its maximum the overall score is
	// exactly 1, confirming the weights renormalize to a convex combination.
	scorer := fixedScorer()
	outfit := outfitOf(
		types.WardrobeItem{
			ID: "tee", Category: "tops", Colors: []string{"white"}, Style: "casual",
			Occasions: []string{"casual", "versatile", "everyday"}, Seasons: []string{"all"},
			Tags: []string{"trending"},
		},
		types.WardrobeItem{
			ID: "jeans", Category: "bottoms", Colors: []string{"black"}, Style: "casual",
			Occasions: []string{"casual", "versatile", "everyday"}, Seasons: []string{"all"},
			Tags: []string{"modern"},
		},
	)
	profile := &types.StyleProfile{PreferredStyle: "casual"}
	ctx := &types.RequestContext{Occasion: "casual", SeasonalPreference: true}

	analysis := scorer.Score(outfit, profile, ctx)

	// Color harmony is 0.8 (neutral), everything else 1.0.
	assert.Greater(t, analysis.OverallScore, 0.9)
	assert.LessOrEqual(t, analysis.OverallScore, 1.0)
}

func TestScore_WeatherWeightZeroWithoutWeather(t *testing.T) {
	scorer := fixedScorer()
	outfit := casualOutfit()
	profile := &types.StyleProfile{}

	noWeather := scorer.Score(outfit, profile, &types.RequestContext{Occasion: "casual"})
	withWeather := scorer.Score(outfit, profile, &types.RequestContext{
		Occasion: "casual",
		Weather:  &types.Weather{TemperatureC: 20},
	})

	assert.True(t, noWeather.WeatherAppropriate)
	// The weather dimension scores 1.0 here, so including it raises the
	// weighted average; without weather it must contribute nothing.
	assert.Greater(t, withWeather.OverallScore, noWeather.OverallScore)
}

func TestScore_SeasonalWeightRequiresFlag(t *testing.T) {
	scorer := fixedScorer()
	// Winter-only outfit scored in June: seasonal dimension fails.
	outfit := outfitOf(
		types.WardrobeItem{
			ID: "coat", Category: "outerwear", Colors: []string{"black"},
			Style: "casual", Occasions: []string{"casual"}, Seasons: []string{"winter"},
		},
		types.WardrobeItem{
			ID: "boots", Category: "shoes", Colors: []string{"brown"},
			Style: "casual", Occasions: []string{"casual"}, Seasons: []string{"winter"},
		},
	)

	off := scorer.Score(outfit, &types.StyleProfile{}, &types.RequestContext{Occasion: "casual"})
	on := scorer.Score(outfit, &types.StyleProfile{}, &types.RequestContext{Occasion: "casual", SeasonalPreference: true})

	assert.False(t, off.SeasonalAppropriate)
	assert.Greater(t, off.OverallScore, on.OverallScore)
}

func TestScore_SingleItemOutfitStillScores(t *testing.T) {
	scorer := fixedScorer()
	outfit := outfitOf(types.WardrobeItem{ID: "dress", Category: "dresses", Colors: []string{"red"}, Style: "elegant"})

	analysis := scorer.Score(outfit, &types.StyleProfile{}, &types.RequestContext{Occasion: "date"})

	assert.Equal(t, 1.0, analysis.StyleCoherence)
	assert.Equal(t, 1.0, analysis.ColorHarmony)
	assert.Equal(t, "monochrome", analysis.HarmonyType)
}

func TestScore_ReasoningCappedAtThree(t *testing.T) {
	scorer := fixedScorer()
	outfit := outfitOf(
		types.WardrobeItem{
			ID: "dress", Category: "dresses", Colors: []string{"black"},
			Style: "elegant", Occasions: []string{"date"}, Seasons: []string{"all"},
		},
		types.WardrobeItem{
			ID: "heels", Category: "shoes", Colors: []string{"black"},
			Style: "elegant", Occasions: []string{"date"}, Seasons: []string{"all"},
		},
	)
	ctx := &types.RequestContext{
		Occasion:  "date",
		TimeOfDay: types.TimeEvening,
		Weather:   &types.Weather{TemperatureC: 18},
	}

	analysis := scorer.Score(outfit, &types.StyleProfile{}, ctx)

	assert.NotEmpty(t, analysis.Reasoning)
	assert.LessOrEqual(t, len(analysis.Reasoning), 3)
}

func TestScore_ImprovementsForWeakDimensions(t *testing.T) {
	scorer := fixedScorer()
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Category: "tops", Colors: []string{"red"}, Style: "sporty"},
		types.WardrobeItem{ID: "b", Category: "bottoms", Colors: []string{"teal"}, Style: "formal"},
		types.WardrobeItem{ID: "c", Category: "shoes", Colors: []string{"magenta"}, Style: "bohemian"},
	)

	analysis := scorer.Score(outfit, &types.StyleProfile{}, &types.RequestContext{Occasion: "formal"})

	assert.NotEmpty(t, analysis.Improvements)
}

func TestScore_ColorStoryPresent(t *testing.T) {
	scorer := fixedScorer()

	analysis := scorer.Score(casualOutfit(), &types.StyleProfile{}, &types.RequestContext{Occasion: "casual"})

	assert.NotEmpty(t, analysis.ColorStory)
	assert.Contains(t, analysis.ColorStory, "white")
}

func TestDescribe(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "1", Name: "White Tee", Category: "tops", Colors: []string{"white"}},
		types.WardrobeItem{ID: "2", Name: "Blue Jeans", Category: "bottoms", Colors: []string{"blue"}},
	)

	description := Describe(outfit, &types.RequestContext{Occasion: "casual"})

	assert.Equal(t, "Casual look: White Tee + Blue Jeans", description)
}
