package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-stylist/internal/ingestion"
	"github.com/jonathan/outfit-stylist/internal/observability"
	"github.com/jonathan/outfit-stylist/internal/scoring"
	"github.com/jonathan/outfit-stylist/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a specific outfit",
	Long:  "Scores one outfit, named by wardrobe item ids, across all dimensions and prints the per-dimension breakdown, reasoning, and color story.",
	RunE:  runAnalyze,
}

var (
	analyzeWardrobe string
	analyzeProfile  string
	analyzeItems    string
	analyzeFlags    contextFlags
	analyzeVerbose  bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeWardrobe, "wardrobe", "w", "", "Path to wardrobe JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to style profile JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeItems, "items", "i", "", "Comma-separated wardrobe item ids (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.occasion, "occasion", "o", "", "Occasion to evaluate against (required)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.timeOfDay, "time-of-day", "", "morning, afternoon, evening or night")
	analyzeCmd.Flags().StringVar(&analyzeFlags.season, "season", "", "Season override (spring, summer, fall, winter)")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.temperature, "temperature", 0, "Current temperature in °C")
	analyzeCmd.Flags().StringVar(&analyzeFlags.condition, "condition", "", "Weather condition (e.g. rain, clear)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted breakdown instead of JSON")

	mustMarkRequired(analyzeCmd, "wardrobe", "items", "occasion")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	analyzeFlags.hasWeather = cmd.Flags().Changed("temperature")
	reqCtx, err := buildContext(analyzeFlags)
	if err != nil {
		return err
	}

	items, _, err := ingestion.LoadWardrobe(analyzeWardrobe)
	if err != nil {
		return err
	}
	selected, err := selectItems(items, analyzeItems)
	if err != nil {
		return err
	}

	profile := &types.StyleProfile{}
	if analyzeProfile != "" {
		profile, err = ingestion.LoadProfile(analyzeProfile)
		if err != nil {
			return err
		}
	}

	outfit := types.CandidateOutfit{Items: selected}
	scorer := &scoring.Scorer{}
	analysis := scorer.Score(&outfit, profile, reqCtx)

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintAnalysis(&analysis)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"analysis":    analysis,
		"description": scoring.Describe(&outfit, reqCtx),
	})
}
