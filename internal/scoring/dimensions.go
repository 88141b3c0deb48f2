package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/outfit-stylist/internal/colors"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// compatibleStylePairs lists two-style combinations that still read as one
// coherent look.
var compatibleStylePairs = [][2]string{
	{"casual", "smart-casual"},
	{"business", "formal"},
	{"bohemian", "casual"},
	{"minimalist", "modern"},
	{"vintage", "classic"},
}

// ColorHarmonyScore evaluates the union of all item colors in the outfit.
func ColorHarmonyScore(outfit *types.CandidateOutfit) colors.Harmony {
	return colors.Evaluate(outfit.AllColors())
}

// StyleCoherence scores how uniformly styled the outfit is: 1.0 for a
// single shared style, 0.8 for a known-compatible two-style combination,
// otherwise a floor-bounded penalty per extra style.
func StyleCoherence(outfit *types.CandidateOutfit) float64 {
	styles := make(map[string]bool)
	for _, item := range outfit.Items {
		style := strings.ToLower(strings.TrimSpace(item.Style))
		if style != "" {
			styles[style] = true
		}
	}

	switch len(styles) {
	case 0, 1:
		return 1.0
	case 2:
		for _, pair := range compatibleStylePairs {
			if styles[pair[0]] && styles[pair[1]] {
				return 0.8
			}
		}
	}

	score := 1.0 - 0.2*float64(len(styles)-1)
	if score < 0.3 {
		return 0.3
	}
	return score
}

// ItemOccasionFit scores one item against an occasion: 1.0 for a direct
// occasion tag, 0.8 for a preferred style, 0.6 for a preferred color, else
// a low floor.
func ItemOccasionFit(item *types.WardrobeItem, occasion string) float64 {
	if item.HasOccasion(occasion) {
		return 1.0
	}
	profile := ProfileForOccasion(occasion)
	for _, style := range profile.PreferredStyles {
		if strings.EqualFold(item.Style, style) {
			return 0.8
		}
	}
	for _, color := range profile.PreferredColors {
		if item.HasColor(color) {
			return 0.6
		}
	}
	return 0.2
}

// OccasionFit averages ItemOccasionFit across the outfit.
func OccasionFit(outfit *types.CandidateOutfit, occasion string) float64 {
	if len(outfit.Items) == 0 {
		return 0
	}
	total := 0.0
	for i := range outfit.Items {
		total += ItemOccasionFit(&outfit.Items[i], occasion)
	}
	return total / float64(len(outfit.Items))
}

// itemTimeOfDayFit scores one item for a daypart. Formal and elegant styles
// belong to the evening; sporty and casual-only pieces do not.
func itemTimeOfDayFit(item *types.WardrobeItem, tod types.TimeOfDay) float64 {
	style := strings.ToLower(strings.TrimSpace(item.Style))

	switch tod {
	case types.TimeEvening, types.TimeNight:
		if style == "formal" || style == "elegant" {
			return 1.0
		}
		if style == "sporty" || item.HasTag("casual-only") {
			return 0.2
		}
	case types.TimeMorning:
		if style == "casual" || style == "business" {
			return 0.9
		}
		if style == "formal" {
			return 0.4
		}
	}
	return 0.7
}

// TimeOfDayFit averages per-item daypart fit across the outfit.
func TimeOfDayFit(outfit *types.CandidateOutfit, tod types.TimeOfDay) float64 {
	if len(outfit.Items) == 0 {
		return 0
	}
	total := 0.0
	for i := range outfit.Items {
		total += itemTimeOfDayFit(&outfit.Items[i], tod)
	}
	return total / float64(len(outfit.Items))
}

// ItemWeatherFit scores one item against a weather snapshot. Warm pieces
// score well in cold, light pieces in heat, waterproof pieces in rain.
// Returns 1.0 when no weather is supplied.
func ItemWeatherFit(item *types.WardrobeItem, weather *types.Weather) float64 {
	if weather == nil {
		return 1.0
	}

	score := 0.7
	category, _ := types.ParseCategory(item.Category)
	warm := category == types.CategoryOuterwear || item.HasTag("warm") || item.HasTag("wool")
	light := item.HasTag("light") || item.HasTag("breathable") || item.HasTag("linen")

	switch {
	case weather.TemperatureC < 10:
		if warm {
			score = 1.0
		} else if light {
			score = 0.2
		}
	case weather.TemperatureC > 25:
		if light {
			score = 1.0
		} else if warm {
			score = 0.2
		}
	}

	if strings.Contains(strings.ToLower(weather.Condition), "rain") {
		if item.HasTag("waterproof") {
			score = 1.0
		} else if item.HasTag("delicate") {
			score = 0.1
		}
	}

	return score
}

// WeatherAppropriate reports whether every item individually clears the
// weather-fit floor. Trivially true without a weather snapshot.
func WeatherAppropriate(outfit *types.CandidateOutfit, weather *types.Weather) bool {
	if weather == nil {
		return true
	}
	for i := range outfit.Items {
		if ItemWeatherFit(&outfit.Items[i], weather) <= 0.3 {
			return false
		}
	}
	return true
}

// SeasonalAppropriate reports whether at least one item is tagged for the
// effective season or carries an all-season sentinel.
func SeasonalAppropriate(outfit *types.CandidateOutfit, ctx *types.RequestContext, now time.Time) bool {
	season := ctx.EffectiveSeason(now)
	for i := range outfit.Items {
		item := &outfit.Items[i]
		if item.HasSeason(string(season)) || item.HasSeason("all") || item.HasSeason("year-round") {
			return true
		}
	}
	return false
}

// PersonalAlignment blends preferred-style match (40%), favorite-color
// overlap (30%), and palette harmony (30%), renormalizing over the terms
// the profile actually supplies.
func PersonalAlignment(outfit *types.CandidateOutfit, profile *types.StyleProfile) (float64, bool) {
	if len(outfit.Items) == 0 || profile == nil {
		return 0, false
	}

	type term struct {
		weight float64
		value  float64
	}
	terms := make([]term, 0, 3)

	if profile.PreferredStyle != "" {
		matched := 0
		for i := range outfit.Items {
			if strings.EqualFold(outfit.Items[i].Style, profile.PreferredStyle) {
				matched++
			}
		}
		terms = append(terms, term{0.4, float64(matched) / float64(len(outfit.Items))})
	}

	if len(profile.FavoriteColors) > 0 {
		matched := 0
		for i := range outfit.Items {
			for _, favorite := range profile.FavoriteColors {
				if outfit.Items[i].HasColor(favorite) {
					matched++
					break
				}
			}
		}
		terms = append(terms, term{0.3, float64(matched) / float64(len(outfit.Items))})
	}

	if len(profile.ColorPaletteColors) > 0 {
		matched := 0
		for i := range outfit.Items {
			if colors.EvaluatePair(outfit.Items[i].Colors, profile.ColorPaletteColors).IsHarmonious {
				matched++
			}
		}
		terms = append(terms, term{0.3, float64(matched) / float64(len(outfit.Items))})
	}

	if len(terms) == 0 {
		return 0, false
	}

	weightSum := 0.0
	weighted := 0.0
	for _, t := range terms {
		weightSum += t.weight
		weighted += t.weight * t.value
	}
	return weighted / weightSum, true
}

// Versatility is the fraction of items that are explicitly versatile or
// carry more than two occasion/season tags.
func Versatility(outfit *types.CandidateOutfit) float64 {
	if len(outfit.Items) == 0 {
		return 0
	}
	versatile := 0
	for i := range outfit.Items {
		item := &outfit.Items[i]
		if item.HasOccasion("versatile") || item.HasTag("versatile") ||
			len(item.Occasions)+len(item.Seasons) > 2 {
			versatile++
		}
	}
	return float64(versatile) / float64(len(outfit.Items))
}

// TrendRelevance is the fraction of items styled contemporary or tagged as
// trending/modern.
func TrendRelevance(outfit *types.CandidateOutfit) float64 {
	if len(outfit.Items) == 0 {
		return 0
	}
	trendy := 0
	for i := range outfit.Items {
		item := &outfit.Items[i]
		if strings.EqualFold(item.Style, "contemporary") ||
			item.HasTag("trending") || item.HasTag("modern") {
			trendy++
		}
	}
	return float64(trendy) / float64(len(outfit.Items))
}
