package scoring

import (
	"time"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// Canonical dimension weights. The raw weights do not sum to 1; the overall
// score renormalizes over whichever dimensions apply to the request, so it
// is always a convex combination of the applicable dimension scores.
// Weather carries zero weight without a weather snapshot, seasonal carries
// zero weight unless the seasonal-preference flag is set, time-of-day
// carries zero weight when no daypart is supplied, and personal alignment
// carries zero weight when the profile supplies no preference signals.
const (
	colorHarmonyWeight      = 0.20
	occasionFitWeight       = 0.25
	styleCoherenceWeight    = 0.20
	timeOfDayWeight         = 0.15
	weatherWeight           = 0.15
	personalAlignmentWeight = 0.20
	versatilityWeight       = 0.05
	trendRelevanceWeight    = 0.10
	seasonalWeight          = 0.10
)

// Scorer computes outfit analyses. The zero value is usable; Now is
// overridable for deterministic seasonal tests.
type Scorer struct {
	Now func() time.Time
}

func (s *Scorer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Score computes the full analysis for one candidate outfit against a style
// profile and request context.
func (s *Scorer) Score(outfit *types.CandidateOutfit, profile *types.StyleProfile, ctx *types.RequestContext) types.OutfitAnalysis {
	now := s.now()

	harmony := ColorHarmonyScore(outfit)
	analysis := types.OutfitAnalysis{
		ColorHarmony:        harmony.Confidence,
		HarmonyType:         harmony.Type,
		StyleCoherence:      StyleCoherence(outfit),
		OccasionFit:         OccasionFit(outfit, ctx.Occasion),
		WeatherAppropriate:  WeatherAppropriate(outfit, ctx.Weather),
		SeasonalAppropriate: SeasonalAppropriate(outfit, ctx, now),
		Versatility:         Versatility(outfit),
		TrendRelevance:      TrendRelevance(outfit),
	}

	personal, personalApplies := PersonalAlignment(outfit, profile)
	analysis.PersonalAlignment = personal

	if ctx.TimeOfDay != "" {
		analysis.TimeOfDayFit = TimeOfDayFit(outfit, ctx.TimeOfDay)
	}

	weighted := 0.0
	weightSum := 0.0
	add := func(weight, value float64) {
		weighted += weight * value
		weightSum += weight
	}

	add(colorHarmonyWeight, analysis.ColorHarmony)
	add(occasionFitWeight, analysis.OccasionFit)
	add(styleCoherenceWeight, analysis.StyleCoherence)
	add(versatilityWeight, analysis.Versatility)
	add(trendRelevanceWeight, analysis.TrendRelevance)
	if ctx.TimeOfDay != "" {
		add(timeOfDayWeight, analysis.TimeOfDayFit)
	}
	if ctx.Weather != nil {
		add(weatherWeight, boolScore(analysis.WeatherAppropriate))
	}
	if personalApplies {
		add(personalAlignmentWeight, analysis.PersonalAlignment)
	}
	if ctx.SeasonalPreference {
		add(seasonalWeight, boolScore(analysis.SeasonalAppropriate))
	}

	if weightSum > 0 {
		analysis.OverallScore = weighted / weightSum
	}

	analysis.Reasoning = buildReasoning(&analysis, ctx)
	analysis.Improvements = buildImprovements(&analysis, ctx)
	analysis.ColorStory = buildColorStory(outfit, harmony)

	return analysis
}

func boolScore(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
