// Package preferences records explicit outfit feedback and derives learned
// preference signals from it.
package preferences

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// Store persists outfit feedback and serves aggregated preferences. The
// recommendation engine never writes to a Store; the host layer does.
type Store interface {
	AddFeedback(ctx context.Context, feedback *types.OutfitFeedback) error
	GetPreferences(ctx context.Context, userID uuid.UUID) (*types.PreferenceSummary, error)
}

// minSignalCount is how often a color or style must recur in feedback of
// one verdict before it counts as a learned signal.
const minSignalCount = 2

// Summarize aggregates feedback events into a preference summary. Colors
// and styles recurring in liked/worn feedback become liked signals; those
// recurring in disliked feedback become avoided signals. Output lists are
// ordered most-frequent first, ties broken alphabetically.
func Summarize(feedback []types.OutfitFeedback) *types.PreferenceSummary {
	likedColors := make(map[string]int)
	likedStyles := make(map[string]int)
	avoidedColors := make(map[string]int)
	avoidedStyles := make(map[string]int)

	for i := range feedback {
		fb := &feedback[i]
		colorTarget, styleTarget := likedColors, likedStyles
		if fb.Verdict == types.VerdictDisliked {
			colorTarget, styleTarget = avoidedColors, avoidedStyles
		}
		for _, c := range fb.Colors {
			if normalized := strings.ToLower(strings.TrimSpace(c)); normalized != "" {
				colorTarget[normalized]++
			}
		}
		for _, s := range fb.Styles {
			if normalized := strings.ToLower(strings.TrimSpace(s)); normalized != "" {
				styleTarget[normalized]++
			}
		}
	}

	return &types.PreferenceSummary{
		LikedColors:   topSignals(likedColors),
		LikedStyles:   topSignals(likedStyles),
		AvoidedColors: topSignals(avoidedColors),
		AvoidedStyles: topSignals(avoidedStyles),
		FeedbackCount: len(feedback),
	}
}

func topSignals(counts map[string]int) []string {
	signals := make([]string, 0, len(counts))
	for value, count := range counts {
		if count >= minSignalCount {
			signals = append(signals, value)
		}
	}
	sort.Slice(signals, func(i, j int) bool {
		if counts[signals[i]] != counts[signals[j]] {
			return counts[signals[i]] > counts[signals[j]]
		}
		return signals[i] < signals[j]
	})
	return signals
}
