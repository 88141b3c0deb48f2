// Package filter narrows a wardrobe to the items admissible under a
// request context's occasion, season, and weather constraints.
package filter

import (
	"strings"

	"github.com/jonathan/outfit-stylist/internal/scoring"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// MinimumWardrobe is the smallest admissible set the pipeline will proceed
// with; below it the request resolves to an empty recommendation list.
const MinimumWardrobe = 2

// softOccasionThreshold is the continuous occasion-fit floor used by the
// soft filter variant.
const softOccasionThreshold = 0.3

// Hard weather cutoffs.
const (
	outerwearMaxTempC = 30.0
	shortsMinTempC    = 0.0

	// Below this temperature outerwear bypasses the occasion gate: a coat
	// goes over whatever the occasion calls for.
	coldOuterwearTempC = 10.0
)

// Options selects between the hard (default) and soft occasion gates.
type Options struct {
	SoftOccasion bool
}

// Filter returns the admissible subset of items for the context, preserving
// input order. Items are never mutated.
func Filter(items []types.WardrobeItem, ctx *types.RequestContext, opts Options) []types.WardrobeItem {
	admissible := make([]types.WardrobeItem, 0, len(items))
	for i := range items {
		item := &items[i]
		if !occasionAdmissible(item, ctx, opts) {
			continue
		}
		if !seasonAdmissible(item, ctx) {
			continue
		}
		if !weatherAdmissible(item, ctx.Weather) {
			continue
		}
		admissible = append(admissible, items[i])
	}
	return admissible
}

// Sufficient reports whether enough items survived filtering to build
// outfits from.
func Sufficient(items []types.WardrobeItem) bool {
	return len(items) >= MinimumWardrobe
}

func occasionAdmissible(item *types.WardrobeItem, ctx *types.RequestContext, opts Options) bool {
	if ctx.Weather != nil && ctx.Weather.TemperatureC < coldOuterwearTempC {
		if category, _ := types.ParseCategory(item.Category); category == types.CategoryOuterwear {
			return true
		}
	}

	if opts.SoftOccasion {
		return scoring.ItemOccasionFit(item, ctx.Occasion) >= softOccasionThreshold
	}

	if item.HasOccasion(ctx.Occasion) {
		return true
	}
	if item.HasOccasion("versatile") || item.HasOccasion("everyday") {
		return true
	}
	// Everyday pieces are admissible for casual requests even without an
	// explicit casual tag.
	if strings.EqualFold(ctx.Occasion, "casual") && item.HasTag("everyday") {
		return true
	}
	return false
}

func seasonAdmissible(item *types.WardrobeItem, ctx *types.RequestContext) bool {
	if ctx.Season == "" {
		return true
	}
	return item.HasSeason(string(ctx.Season)) ||
		item.HasSeason("all") ||
		item.HasSeason("year-round")
}

func weatherAdmissible(item *types.WardrobeItem, weather *types.Weather) bool {
	if weather == nil {
		return true
	}

	category, _ := types.ParseCategory(item.Category)
	if category == types.CategoryOuterwear && weather.TemperatureC > outerwearMaxTempC {
		return false
	}
	if item.HasTag("shorts") && weather.TemperatureC < shortsMinTempC {
		return false
	}
	if item.HasTag("delicate") && strings.Contains(strings.ToLower(weather.Condition), "rain") {
		return false
	}
	return true
}
