package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-stylist/internal/colors"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// maxReasons caps the number of reasoning strings attached to one analysis.
const maxReasons = 3

// buildReasoning emits short explanations by threshold, in fixed priority
// order: color, occasion, style, weather, then trims to maxReasons.
func buildReasoning(analysis *types.OutfitAnalysis, ctx *types.RequestContext) []string {
	reasons := make([]string, 0, maxReasons)

	switch {
	case analysis.ColorHarmony > 0.8:
		reasons = append(reasons, "Exceptional color coordination ties this look together")
	case analysis.ColorHarmony > 0.6:
		reasons = append(reasons, "Well-balanced color palette")
	}

	switch {
	case analysis.OccasionFit > 0.8:
		reasons = append(reasons, fmt.Sprintf("A natural fit for a %s setting", ctx.Occasion))
	case analysis.OccasionFit > 0.6:
		reasons = append(reasons, fmt.Sprintf("Works well for %s occasions", ctx.Occasion))
	}

	if analysis.StyleCoherence > 0.8 {
		reasons = append(reasons, "Cohesive style throughout the outfit")
	}

	if ctx.Weather != nil && analysis.WeatherAppropriate {
		reasons = append(reasons, "Dressed right for today's weather")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// buildImprovements suggests adjustments for the weakest dimensions.
func buildImprovements(analysis *types.OutfitAnalysis, ctx *types.RequestContext) []string {
	improvements := make([]string, 0, 2)

	if analysis.ColorHarmony < 0.4 {
		improvements = append(improvements, "Try swapping one piece for a neutral to calm the palette")
	}
	if analysis.OccasionFit < 0.5 {
		improvements = append(improvements, fmt.Sprintf("Consider pieces tagged for %s", ctx.Occasion))
	}
	if analysis.StyleCoherence < 0.6 {
		improvements = append(improvements, "Mixing this many styles dilutes the look; anchor on one")
	}
	if ctx.Weather != nil && !analysis.WeatherAppropriate {
		improvements = append(improvements, "Some pieces don't suit the forecast")
	}

	return improvements
}

// buildColorStory describes the outfit's palette in one sentence.
func buildColorStory(outfit *types.CandidateOutfit, harmony colors.Harmony) string {
	palette := outfit.AllColors()
	if len(palette) == 0 {
		return ""
	}

	joined := strings.Join(palette, ", ")
	switch harmony.Type {
	case colors.HarmonyMonochrome:
		return fmt.Sprintf("A focused %s story", joined)
	case colors.HarmonyNeutral:
		return fmt.Sprintf("Grounded neutrals: %s", joined)
	case colors.HarmonyComplementary:
		return fmt.Sprintf("Confident contrast built on %s", joined)
	case colors.HarmonyAnalogous:
		return fmt.Sprintf("A flowing family of %s", joined)
	default:
		return fmt.Sprintf("An eclectic mix of %s", joined)
	}
}

// Describe produces the short human-readable title for a recommendation.
func Describe(outfit *types.CandidateOutfit, ctx *types.RequestContext) string {
	names := make([]string, 0, len(outfit.Items))
	for i := range outfit.Items {
		item := &outfit.Items[i]
		if item.Name != "" {
			names = append(names, item.Name)
		} else {
			names = append(names, item.Category)
		}
	}

	occasion := ctx.Occasion
	if occasion == "" {
		occasion = "everyday"
	}
	title := strings.ToUpper(occasion[:1]) + occasion[1:]
	return fmt.Sprintf("%s look: %s", title, strings.Join(names, " + "))
}
