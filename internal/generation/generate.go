package generation

import (
	"strings"

	"github.com/jonathan/outfit-stylist/internal/colors"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// Pairing thresholds and combinatorial bounds.
const (
	pairHarmonyThreshold = 0.4
	maxTopsConsidered    = 8
	maxBottomsConsidered = 6

	// Deterministic optional-addition cutoffs: the same inputs always
	// yield the same candidates.
	outerwearMaxTempC = 20.0
	layeringMaxTempC  = 15.0
)

// Minimum item counts per strategy.
const (
	minDressOutfit     = 2
	minSeparatesOutfit = 3
)

// Options tunes one generation pass.
type Options struct {
	IncludeAccessories bool
	MaxCombinations    int
}

// Generate enumerates candidate outfits from items grouped by category,
// concatenating the dress-based, separates-based, and statement-piece
// strategies in that order. The cap truncates candidates from later
// strategies first. No candidate contains duplicate items.
func Generate(groups map[types.Category][]types.WardrobeItem, ctx *types.RequestContext, opts Options) []types.CandidateOutfit {
	if opts.MaxCombinations <= 0 {
		opts.MaxCombinations = types.DefaultMaxCombinations
	}

	candidates := make([]types.CandidateOutfit, 0, opts.MaxCombinations)
	candidates = append(candidates, dressBased(groups, ctx, opts)...)
	candidates = append(candidates, separatesBased(groups, ctx, opts)...)
	candidates = append(candidates, statementBased(groups, opts)...)

	if len(candidates) > opts.MaxCombinations {
		candidates = candidates[:opts.MaxCombinations]
	}
	return candidates
}

// dressBased builds one candidate per dress: the best color-compatible
// shoe, outerwear when the forecast calls for it, and optionally one
// accessory matched against the whole outfit's colors.
func dressBased(groups map[types.Category][]types.WardrobeItem, ctx *types.RequestContext, opts Options) []types.CandidateOutfit {
	dresses := groups[types.CategoryDresses]
	if len(dresses) == 0 {
		return nil
	}

	out := make([]types.CandidateOutfit, 0, len(dresses))
	for i := range dresses {
		dress := dresses[i]
		items := []types.WardrobeItem{dress}

		if shoe := bestColorMatch(dress.Colors, groups[types.CategoryShoes], pairHarmonyThreshold); shoe != nil {
			items = append(items, *shoe)
		}

		if wantOuterwear(ctx) {
			if layer := bestColorMatch(outfitColors(items), groups[types.CategoryOuterwear], pairHarmonyThreshold); layer != nil {
				items = append(items, *layer)
			}
		}

		if opts.IncludeAccessories {
			if accessory := bestColorMatch(outfitColors(items), groups[types.CategoryAccessories], pairHarmonyThreshold); accessory != nil {
				items = append(items, *accessory)
			}
		}

		if len(items) >= minDressOutfit {
			out = append(out, types.CandidateOutfit{Items: items})
		}
	}
	return out
}

// separatesBased pairs tops with bottoms whose combined colors clear the
// harmony threshold, bounded to the first 8 tops and 6 bottoms.
func separatesBased(groups map[types.Category][]types.WardrobeItem, ctx *types.RequestContext, opts Options) []types.CandidateOutfit {
	tops := truncate(groups[types.CategoryTops], maxTopsConsidered)
	bottoms := truncate(groups[types.CategoryBottoms], maxBottomsConsidered)
	if len(tops) == 0 || len(bottoms) == 0 {
		return nil
	}

	// A top+bottom pair normally needs shoes to count as an outfit, but a
	// wardrobe with no shoes at all should still produce pairings.
	minItems := minSeparatesOutfit
	if len(groups[types.CategoryShoes]) == 0 {
		minItems = 2
	}

	out := make([]types.CandidateOutfit, 0, len(tops)*len(bottoms))
	for i := range tops {
		for j := range bottoms {
			pair := colors.EvaluatePair(tops[i].Colors, bottoms[j].Colors)
			if pair.Confidence <= pairHarmonyThreshold {
				continue
			}

			items := []types.WardrobeItem{tops[i], bottoms[j]}

			if shoe := bestColorMatch(outfitColors(items), groups[types.CategoryShoes], pairHarmonyThreshold); shoe != nil {
				items = append(items, *shoe)
			}

			if wantLayering(ctx) {
				if layer := pickLayeringPiece(groups[types.CategoryOuterwear], outfitColors(items)); layer != nil {
					items = append(items, *layer)
				}
			}

			if opts.IncludeAccessories {
				if accessory := bestColorMatch(outfitColors(items), groups[types.CategoryAccessories], pairHarmonyThreshold); accessory != nil {
					items = append(items, *accessory)
				}
			}

			if len(items) >= minItems {
				out = append(out, types.CandidateOutfit{Items: items})
			}
		}
	}
	return out
}

// statementBased anchors an outfit on each statement piece, adding one
// neutral basic from the same or an adjacent category and optionally one
// minimalist accessory.
func statementBased(groups map[types.Category][]types.WardrobeItem, opts Options) []types.CandidateOutfit {
	out := make([]types.CandidateOutfit, 0)
	for _, category := range types.AllCategories {
		for i := range groups[category] {
			statement := groups[category][i]
			if !isStatement(&statement) {
				continue
			}

			basic := findNeutralBasic(groups, category, statement.ID)
			if basic == nil {
				continue
			}
			items := []types.WardrobeItem{statement, *basic}

			if opts.IncludeAccessories {
				if accessory := pickMinimalistAccessory(groups[types.CategoryAccessories], statement.ID, basic.ID); accessory != nil {
					items = append(items, *accessory)
				}
			}

			out = append(out, types.CandidateOutfit{Items: items})
		}
	}
	return out
}

// wantOuterwear: add outerwear to a dress look when there is no forecast
// to rule it out, or when it is genuinely cool.
func wantOuterwear(ctx *types.RequestContext) bool {
	return ctx.Weather == nil || ctx.Weather.TemperatureC < outerwearMaxTempC
}

// wantLayering: add a layering piece to separates for evenings and cold
// afternoons.
func wantLayering(ctx *types.RequestContext) bool {
	if ctx.IsEvening() {
		return true
	}
	return ctx.Weather != nil && ctx.Weather.TemperatureC < layeringMaxTempC
}

// bestColorMatch returns the single candidate whose colors score best
// against the base colors, provided it clears the threshold.
func bestColorMatch(baseColors []string, candidates []types.WardrobeItem, threshold float64) *types.WardrobeItem {
	var best *types.WardrobeItem
	bestScore := threshold
	for i := range candidates {
		score := colors.EvaluatePair(baseColors, candidates[i].Colors).Confidence
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

// pickLayeringPiece prefers pieces meant for layering, falling back to any
// color-compatible outerwear when none are tagged.
func pickLayeringPiece(outerwear []types.WardrobeItem, baseColors []string) *types.WardrobeItem {
	layering := make([]types.WardrobeItem, 0, len(outerwear))
	for i := range outerwear {
		if outerwear[i].HasTag("layering") || strings.EqualFold(outerwear[i].Style, "cardigan") {
			layering = append(layering, outerwear[i])
		}
	}
	if picked := bestColorMatch(baseColors, layering, pairHarmonyThreshold); picked != nil {
		return picked
	}
	return bestColorMatch(baseColors, outerwear, pairHarmonyThreshold)
}

func isStatement(item *types.WardrobeItem) bool {
	return item.HasTag("statement") || item.HasTag("bold")
}

func findNeutralBasic(groups map[types.Category][]types.WardrobeItem, anchor types.Category, excludeID string) *types.WardrobeItem {
	for _, category := range AdjacentCategories(anchor) {
		for i := range groups[category] {
			item := &groups[category][i]
			if item.ID == excludeID || !item.HasTag("basic") {
				continue
			}
			if allNeutral(item.Colors) {
				picked := *item
				return &picked
			}
		}
	}
	return nil
}

func pickMinimalistAccessory(accessories []types.WardrobeItem, excludeIDs ...string) *types.WardrobeItem {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	for i := range accessories {
		item := &accessories[i]
		if excluded[item.ID] {
			continue
		}
		if strings.EqualFold(item.Style, "minimalist") || allNeutral(item.Colors) {
			picked := *item
			return &picked
		}
	}
	return nil
}

func allNeutral(colorNames []string) bool {
	if len(colorNames) == 0 {
		return false
	}
	for _, c := range colorNames {
		if !colors.IsNeutral(c) {
			return false
		}
	}
	return true
}

func outfitColors(items []types.WardrobeItem) []string {
	outfit := types.CandidateOutfit{Items: items}
	return outfit.AllColors()
}

func truncate(items []types.WardrobeItem, limit int) []types.WardrobeItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
