// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/outfit-stylist/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of entries to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContext outputs a human-readable summary of the request context.
func (p *Printer) PrintContext(ctx *types.RequestContext) {
	if ctx == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Occasion:  %s\n", ctx.Occasion))
	if ctx.TimeOfDay != "" {
		sb.WriteString(fmt.Sprintf("Time:      %s\n", ctx.TimeOfDay))
	}
	sb.WriteString(fmt.Sprintf("Season:    %s\n", ctx.EffectiveSeason(time.Now())))
	if ctx.Weather != nil {
		sb.WriteString(fmt.Sprintf("Weather:   %.0f°C", ctx.Weather.TemperatureC))
		if ctx.Weather.Condition != "" {
			sb.WriteString(fmt.Sprintf(", %s", ctx.Weather.Condition))
		}
		sb.WriteString("\n")
	}

	p.printBox("REQUEST CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterSummary outputs how many wardrobe items survived contextual filtering.
func (p *Printer) PrintFilterSummary(total int, kept []types.WardrobeItem) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Wardrobe items: %d\n", total))
	sb.WriteString(fmt.Sprintf("After filtering: %d\n", len(kept)))

	if len(kept) > 0 {
		sb.WriteString("\n")
		count := min(len(kept), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := kept[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", item.Name, item.Category))
		}
		if len(kept) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kept)-maxItemsToShow))
		}
	}

	p.printBox("CONTEXTUAL FILTER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked recommendations with scores and
// color stories.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		p.printBox("RECOMMENDATIONS", "No viable outfits for this context.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Description))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (harmony: %s)\n", rec.Analysis.OverallScore, rec.Analysis.HarmonyType))
		if len(rec.Reasoning) > 0 {
			reason := rec.Reasoning[0]
			if len(reason) > 40 {
				reason = reason[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the per-dimension breakdown for a single outfit.
func (p *Printer) PrintAnalysis(analysis *types.OutfitAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:         %.2f\n\n", analysis.OverallScore))
	sb.WriteString(fmt.Sprintf("Color harmony:   %.2f (%s)\n", analysis.ColorHarmony, analysis.HarmonyType))
	sb.WriteString(fmt.Sprintf("Occasion fit:    %.2f\n", analysis.OccasionFit))
	sb.WriteString(fmt.Sprintf("Style coherence: %.2f\n", analysis.StyleCoherence))
	sb.WriteString(fmt.Sprintf("Versatility:     %.2f\n", analysis.Versatility))

	if analysis.ColorStory != "" {
		sb.WriteString("\n")
		sb.WriteString(analysis.ColorStory)
		sb.WriteString("\n")
	}
	if len(analysis.Improvements) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range analysis.Improvements {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("OUTFIT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
