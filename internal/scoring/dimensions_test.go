package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outfit-stylist/internal/types"
)

func outfitOf(items ...types.WardrobeItem) *types.CandidateOutfit {
	return &types.CandidateOutfit{Items: items}
}

func TestStyleCoherence_SingleStyle(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "casual"},
		types.WardrobeItem{ID: "b", Style: "Casual"},
		types.WardrobeItem{ID: "c", Style: "casual"},
	)

	assert.Equal(t, 1.0, StyleCoherence(outfit))
}

func TestStyleCoherence_CompatiblePair(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "casual"},
		types.WardrobeItem{ID: "b", Style: "smart-casual"},
	)

	assert.Equal(t, 0.8, StyleCoherence(outfit))
}

func TestStyleCoherence_IncompatiblePair(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "sporty"},
		types.WardrobeItem{ID: "b", Style: "formal"},
	)

	assert.InDelta(t, 0.8, StyleCoherence(outfit), 0.001)
}

func TestStyleCoherence_ManyStylesFloor(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "sporty"},
		types.WardrobeItem{ID: "b", Style: "formal"},
		types.WardrobeItem{ID: "c", Style: "bohemian"},
		types.WardrobeItem{ID: "d", Style: "vintage"},
		types.WardrobeItem{ID: "e", Style: "streetwear"},
	)

	assert.Equal(t, 0.3, StyleCoherence(outfit))
}

func TestStyleCoherence_NoStylesIsTriviallyCoherent(t *testing.T) {
	outfit := outfitOf(types.WardrobeItem{ID: "a"}, types.WardrobeItem{ID: "b"})

	assert.Equal(t, 1.0, StyleCoherence(outfit))
}

func TestItemOccasionFit_DirectTag(t *testing.T) {
	item := types.WardrobeItem{ID: "a", Occasions: []string{"work"}}

	assert.Equal(t, 1.0, ItemOccasionFit(&item, "work"))
}

func TestItemOccasionFit_PreferredStyle(t *testing.T) {
	item := types.WardrobeItem{ID: "a", Style: "business"}

	assert.Equal(t, 0.8, ItemOccasionFit(&item, "work"))
}

func TestItemOccasionFit_PreferredColor(t *testing.T) {
	item := types.WardrobeItem{ID: "a", Colors: []string{"navy"}}

	assert.Equal(t, 0.6, ItemOccasionFit(&item, "work"))
}

func TestItemOccasionFit_NoMatch(t *testing.T) {
	item := types.WardrobeItem{ID: "a", Style: "sporty", Colors: []string{"neon green"}}

	assert.Equal(t, 0.2, ItemOccasionFit(&item, "formal"))
}

func TestOccasionFit_Averages(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Occasions: []string{"date"}},
		types.WardrobeItem{ID: "b", Style: "elegant"},
	)

	assert.InDelta(t, 0.9, OccasionFit(outfit, "date"), 0.001)
}

func TestTimeOfDayFit_EveningFavorsFormal(t *testing.T) {
	formal := outfitOf(types.WardrobeItem{ID: "a", Style: "formal"})
	sporty := outfitOf(types.WardrobeItem{ID: "b", Style: "sporty"})

	assert.Equal(t, 1.0, TimeOfDayFit(formal, types.TimeEvening))
	assert.Equal(t, 0.2, TimeOfDayFit(sporty, types.TimeNight))
}

func TestTimeOfDayFit_MorningFavorsCasualAndBusiness(t *testing.T) {
	casual := outfitOf(types.WardrobeItem{ID: "a", Style: "casual"})
	formal := outfitOf(types.WardrobeItem{ID: "b", Style: "formal"})

	assert.Equal(t, 0.9, TimeOfDayFit(casual, types.TimeMorning))
	assert.Equal(t, 0.4, TimeOfDayFit(formal, types.TimeMorning))
}

func TestTimeOfDayFit_DefaultScore(t *testing.T) {
	outfit := outfitOf(types.WardrobeItem{ID: "a", Style: "bohemian"})

	assert.Equal(t, 0.7, TimeOfDayFit(outfit, types.TimeAfternoon))
}

func TestItemWeatherFit_NoWeather(t *testing.T) {
	item := types.WardrobeItem{ID: "a"}

	assert.Equal(t, 1.0, ItemWeatherFit(&item, nil))
}

func TestItemWeatherFit_WarmInCold(t *testing.T) {
	coat := types.WardrobeItem{ID: "coat", Category: "outerwear"}
	linen := types.WardrobeItem{ID: "linen", Category: "tops", Tags: []string{"linen"}}
	cold := &types.Weather{TemperatureC: 2}

	assert.Equal(t, 1.0, ItemWeatherFit(&coat, cold))
	assert.Equal(t, 0.2, ItemWeatherFit(&linen, cold))
}

func TestItemWeatherFit_LightInHeat(t *testing.T) {
	linen := types.WardrobeItem{ID: "linen", Category: "tops", Tags: []string{"breathable"}}
	wool := types.WardrobeItem{ID: "wool", Category: "tops", Tags: []string{"wool"}}
	hot := &types.Weather{TemperatureC: 30}

	assert.Equal(t, 1.0, ItemWeatherFit(&linen, hot))
	assert.Equal(t, 0.2, ItemWeatherFit(&wool, hot))
}

func TestItemWeatherFit_Rain(t *testing.T) {
	raincoat := types.WardrobeItem{ID: "rc", Category: "outerwear", Tags: []string{"waterproof"}}
	silk := types.WardrobeItem{ID: "silk", Category: "tops", Tags: []string{"delicate"}}
	rain := &types.Weather{TemperatureC: 15, Condition: "Rain"}

	assert.Equal(t, 1.0, ItemWeatherFit(&raincoat, rain))
	assert.Equal(t, 0.1, ItemWeatherFit(&silk, rain))
}

func TestWeatherAppropriate(t *testing.T) {
	cold := &types.Weather{TemperatureC: 5, Condition: "snow"}
	good := outfitOf(
		types.WardrobeItem{ID: "coat", Category: "outerwear"},
		types.WardrobeItem{ID: "jeans", Category: "bottoms"},
	)
	bad := outfitOf(
		types.WardrobeItem{ID: "coat", Category: "outerwear"},
		types.WardrobeItem{ID: "linen", Category: "tops", Tags: []string{"linen"}},
	)

	assert.True(t, WeatherAppropriate(good, cold))
	assert.False(t, WeatherAppropriate(bad, cold))
	assert.True(t, WeatherAppropriate(bad, nil))
}

func TestSeasonalAppropriate(t *testing.T) {
	january := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	winterOutfit := outfitOf(
		types.WardrobeItem{ID: "coat", Seasons: []string{"winter"}},
		types.WardrobeItem{ID: "tee", Seasons: []string{"summer"}},
	)
	ctx := &types.RequestContext{Occasion: "casual"}

	assert.True(t, SeasonalAppropriate(winterOutfit, ctx, january))
	assert.True(t, SeasonalAppropriate(winterOutfit, ctx, july))

	summerOnly := outfitOf(types.WardrobeItem{ID: "tee", Seasons: []string{"summer"}})
	assert.False(t, SeasonalAppropriate(summerOnly, ctx, january))

	allSeason := outfitOf(types.WardrobeItem{ID: "jeans", Seasons: []string{"all"}})
	assert.True(t, SeasonalAppropriate(allSeason, ctx, january))
}

func TestSeasonalAppropriate_ExplicitSeasonOverrides(t *testing.T) {
	january := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	summerOnly := outfitOf(types.WardrobeItem{ID: "tee", Seasons: []string{"summer"}})
	ctx := &types.RequestContext{Occasion: "casual", Season: types.SeasonSummer}

	assert.True(t, SeasonalAppropriate(summerOnly, ctx, january))
}

func TestPersonalAlignment_FullProfile(t *testing.T) {
	profile := &types.StyleProfile{
		PreferredStyle:     "casual",
		FavoriteColors:     []string{"blue"},
		ColorPaletteColors: []string{"white", "navy"},
	}
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "casual", Colors: []string{"blue"}},
		types.WardrobeItem{ID: "b", Style: "formal", Colors: []string{"red"}},
	)

	score, applies := PersonalAlignment(outfit, profile)

	assert.True(t, applies)
	// style: 1/2 at 0.4; colors: 1/2 at 0.3; palette: blue+white+navy is
	// neutral-dominant (harmonious), red+white+navy likewise -> 2/2 at 0.3.
	expected := (0.4*0.5 + 0.3*0.5 + 0.3*1.0) / 1.0
	assert.InDelta(t, expected, score, 0.001)
}

func TestPersonalAlignment_RenormalizesMissingTerms(t *testing.T) {
	profile := &types.StyleProfile{PreferredStyle: "casual"}
	outfit := outfitOf(types.WardrobeItem{ID: "a", Style: "casual", Colors: []string{"red"}})

	score, applies := PersonalAlignment(outfit, profile)

	assert.True(t, applies)
	assert.Equal(t, 1.0, score)
}

func TestPersonalAlignment_EmptyProfileDoesNotApply(t *testing.T) {
	outfit := outfitOf(types.WardrobeItem{ID: "a", Style: "casual"})

	_, applies := PersonalAlignment(outfit, &types.StyleProfile{})

	assert.False(t, applies)
}

func TestVersatility(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Occasions: []string{"versatile"}},
		types.WardrobeItem{ID: "b", Occasions: []string{"work", "casual"}, Seasons: []string{"all"}},
		types.WardrobeItem{ID: "c", Occasions: []string{"formal"}},
	)

	assert.InDelta(t, 2.0/3.0, Versatility(outfit), 0.001)
}

func TestTrendRelevance(t *testing.T) {
	outfit := outfitOf(
		types.WardrobeItem{ID: "a", Style: "contemporary"},
		types.WardrobeItem{ID: "b", Tags: []string{"trending"}},
		types.WardrobeItem{ID: "c", Style: "classic"},
		types.WardrobeItem{ID: "d", Tags: []string{"modern"}},
	)

	assert.Equal(t, 0.75, TrendRelevance(outfit))
}

func TestProfileForOccasion_KnownAndFallback(t *testing.T) {
	work := ProfileForOccasion("Work")
	assert.Equal(t, "work", work.Name)
	assert.Equal(t, 3, work.Formality)

	unknown := ProfileForOccasion("spelunking")
	assert.Equal(t, "casual", unknown.Name)
}
