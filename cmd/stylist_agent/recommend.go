package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-stylist/internal/cache"
	"github.com/jonathan/outfit-stylist/internal/config"
	"github.com/jonathan/outfit-stylist/internal/filter"
	"github.com/jonathan/outfit-stylist/internal/ingestion"
	"github.com/jonathan/outfit-stylist/internal/observability"
	"github.com/jonathan/outfit-stylist/internal/pipeline"
	"github.com/jonathan/outfit-stylist/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend outfits from a wardrobe file",
	Long:  "Filters the wardrobe for the given occasion and conditions, generates outfit combinations, scores them across multiple dimensions, and prints a ranked, diverse selection.",
	RunE:  runRecommend,
}

var (
	recommendConfig   string
	recommendWardrobe string
	recommendProfile  string
	recommendFlags    contextFlags
	recommendMax      int
	recommendDiv      float64
	recommendCombos   int
	recommendNoAcc    bool
	recommendSoftOcc  bool
	recommendVerbose  bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendConfig, "config", "c", "", "Path to JSON config file")
	recommendCmd.Flags().StringVarP(&recommendWardrobe, "wardrobe", "w", "", "Path to wardrobe JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to style profile JSON file")
	recommendCmd.Flags().StringVarP(&recommendFlags.occasion, "occasion", "o", "", "Occasion to dress for (required)")
	recommendCmd.Flags().StringVar(&recommendFlags.timeOfDay, "time-of-day", "", "morning, afternoon, evening or night")
	recommendCmd.Flags().StringVar(&recommendFlags.season, "season", "", "Season override (spring, summer, fall, winter)")
	recommendCmd.Flags().Float64Var(&recommendFlags.temperature, "temperature", 0, "Current temperature in °C")
	recommendCmd.Flags().StringVar(&recommendFlags.condition, "condition", "", "Weather condition (e.g. rain, clear)")
	recommendCmd.Flags().BoolVar(&recommendFlags.seasonalPref, "seasonal", false, "Prefer seasonally appropriate colors")
	recommendCmd.Flags().IntVar(&recommendMax, "max", 0, "Maximum recommendations to return")
	recommendCmd.Flags().Float64Var(&recommendDiv, "diversity", 0, "Diversity factor between 0.0 and 1.0")
	recommendCmd.Flags().IntVar(&recommendCombos, "max-combinations", 0, "Maximum candidate outfits to generate")
	recommendCmd.Flags().BoolVar(&recommendNoAcc, "no-accessories", false, "Exclude accessories from outfits")
	recommendCmd.Flags().BoolVar(&recommendSoftOcc, "soft-occasion", false, "Penalize rather than exclude occasion mismatches")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed progress output")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Wardrobe:           recommendWardrobe,
		Profile:            recommendProfile,
		Occasion:           recommendFlags.occasion,
		TimeOfDay:          recommendFlags.timeOfDay,
		Season:             recommendFlags.season,
		MaxRecommendations: recommendMax,
		MaxCombinations:    recommendCombos,
		DiversityFactor:    recommendDiv,
		Verbose:            recommendVerbose,
	}
	if recommendConfig != "" {
		fileCfg, err := config.LoadConfig(recommendConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Wardrobe == "" {
		return fmt.Errorf("wardrobe file is required (use --wardrobe or set 'wardrobe' in config)")
	}
	if cfg.Occasion == "" {
		return fmt.Errorf("occasion is required (use --occasion or set 'occasion' in config)")
	}

	recommendFlags.occasion = cfg.Occasion
	recommendFlags.timeOfDay = cfg.TimeOfDay
	recommendFlags.season = cfg.Season
	recommendFlags.hasWeather = cmd.Flags().Changed("temperature")
	reqCtx, err := buildContext(recommendFlags)
	if err != nil {
		return err
	}

	items, warnings, err := ingestion.LoadWardrobe(cfg.Wardrobe)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	profile := &types.StyleProfile{}
	if cfg.Profile != "" {
		profile, err = ingestion.LoadProfile(cfg.Profile)
		if err != nil {
			return err
		}
	}

	opts := types.RecommendOptions{
		MaxRecommendations: cfg.MaxRecommendations,
		DiversityFactor:    cfg.DiversityFactor,
		MaxCombinations:    cfg.MaxCombinations,
		SoftOccasionFilter: recommendSoftOcc,
	}
	if recommendNoAcc {
		include := false
		opts.IncludeAccessories = &include
	}

	engine := pipeline.New(pipeline.WithCache(cache.New(time.Duration(cfg.CacheTTL)*time.Second, 0)))
	recommendations, err := engine.Recommend(cmd.Context(), items, profile, reqCtx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContext(reqCtx)
		kept := filter.Filter(items, reqCtx, filter.Options{SoftOccasion: recommendSoftOcc})
		printer.PrintFilterSummary(len(items), kept)
		printer.PrintRecommendations(recommendations)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}
