// Package selection picks a diverse, ranked subset of scored outfits.
package selection

import (
	"sort"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// highConfidenceBypass is the overall score above which a candidate is
// accepted regardless of item overlap with earlier selections.
const highConfidenceBypass = 0.9

// Scored pairs a candidate outfit with its analysis for ranking.
type Scored struct {
	Outfit   types.CandidateOutfit
	Analysis types.OutfitAnalysis
}

// Select sorts candidates by overall score (descending, stable) and walks
// the list once, accepting a candidate when its item overlap with already
// selected outfits stays under 1-diversityFactor, or when its score clears
// the high-confidence bypass. A high-overlap, high-confidence outfit early
// in the list can use up items and shadow later candidates; that is the
// intended single-pass behavior, not a bug.
func Select(candidates []Scored, maxRecommendations int, diversityFactor float64) []Scored {
	if maxRecommendations <= 0 || len(candidates) == 0 {
		return nil
	}
	if diversityFactor < 0 {
		diversityFactor = 0
	}
	if diversityFactor > 1 {
		diversityFactor = 1
	}

	ranked := make([]Scored, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Analysis.OverallScore > ranked[j].Analysis.OverallScore
	})

	usedItems := make(map[string]bool)
	seenOutfits := make(map[string]bool)
	selected := make([]Scored, 0, maxRecommendations)

	for i := range ranked {
		candidate := &ranked[i]
		if len(candidate.Outfit.Items) == 0 {
			continue
		}

		signature := candidate.Outfit.Signature()
		if seenOutfits[signature] {
			continue
		}

		overlap := 0
		for _, item := range candidate.Outfit.Items {
			if usedItems[item.ID] {
				overlap++
			}
		}
		overlapRatio := float64(overlap) / float64(len(candidate.Outfit.Items))

		if overlapRatio >= 1-diversityFactor && candidate.Analysis.OverallScore <= highConfidenceBypass {
			continue
		}

		seenOutfits[signature] = true
		for _, item := range candidate.Outfit.Items {
			usedItems[item.ID] = true
		}
		selected = append(selected, *candidate)

		if len(selected) == maxRecommendations {
			break
		}
	}

	return selected
}
