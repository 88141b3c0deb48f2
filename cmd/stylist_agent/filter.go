package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-stylist/internal/filter"
	"github.com/jonathan/outfit-stylist/internal/ingestion"
	"github.com/jonathan/outfit-stylist/internal/observability"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show which wardrobe items suit a context",
	Long:  "Applies the contextual filter to a wardrobe file and prints the items admissible for the given occasion, season, and weather.",
	RunE:  runFilter,
}

var (
	filterWardrobe string
	filterFlags    contextFlags
	filterSoftOcc  bool
	filterVerbose  bool
)

func init() {
	filterCmd.Flags().StringVarP(&filterWardrobe, "wardrobe", "w", "", "Path to wardrobe JSON file (required)")
	filterCmd.Flags().StringVarP(&filterFlags.occasion, "occasion", "o", "", "Occasion to filter for (required)")
	filterCmd.Flags().StringVar(&filterFlags.timeOfDay, "time-of-day", "", "morning, afternoon, evening or night")
	filterCmd.Flags().StringVar(&filterFlags.season, "season", "", "Season override (spring, summer, fall, winter)")
	filterCmd.Flags().Float64Var(&filterFlags.temperature, "temperature", 0, "Current temperature in °C")
	filterCmd.Flags().StringVar(&filterFlags.condition, "condition", "", "Weather condition (e.g. rain, clear)")
	filterCmd.Flags().BoolVar(&filterSoftOcc, "soft-occasion", false, "Penalize rather than exclude occasion mismatches")
	filterCmd.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")

	mustMarkRequired(filterCmd, "wardrobe", "occasion")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	filterFlags.hasWeather = cmd.Flags().Changed("temperature")
	reqCtx, err := buildContext(filterFlags)
	if err != nil {
		return err
	}

	items, warnings, err := ingestion.LoadWardrobe(filterWardrobe)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		os.Stderr.WriteString("Warning: " + w + "\n")
	}

	kept := filter.Filter(items, reqCtx, filter.Options{SoftOccasion: filterSoftOcc})

	if filterVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContext(reqCtx)
		printer.PrintFilterSummary(len(items), kept)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"items":      kept,
		"count":      len(kept),
		"total":      len(items),
		"sufficient": filter.Sufficient(kept),
	})
}
