// Package scoring computes per-dimension scores and the overall weighted
// confidence for candidate outfits.
package scoring

import "strings"

// AccessoryLevel describes how much accessorizing an occasion calls for.
type AccessoryLevel string

const (
	AccessoryMinimal  AccessoryLevel = "minimal"
	AccessoryModerate AccessoryLevel = "moderate"
	AccessoryBold     AccessoryLevel = "bold"
)

// OccasionProfile bundles the formality, color, and style preferences
// associated with a named occasion.
type OccasionProfile struct {
	Name            string
	Formality       int // 1 (casual) to 5 (black tie)
	PreferredColors []string
	AvoidedColors   []string
	PreferredStyles []string
	AccessoryLevel  AccessoryLevel
}

// occasionProfiles is the fixed table of named occasion profiles.
var occasionProfiles = map[string]OccasionProfile{
	"work": {
		Name:            "work",
		Formality:       3,
		PreferredColors: []string{"navy", "black", "gray", "white", "burgundy"},
		AvoidedColors:   []string{"neon", "hot pink"},
		PreferredStyles: []string{"business", "smart-casual", "classic", "minimalist"},
		AccessoryLevel:  AccessoryMinimal,
	},
	"casual": {
		Name:            "casual",
		Formality:       1,
		PreferredColors: []string{"blue", "white", "green", "beige", "pink"},
		PreferredStyles: []string{"casual", "sporty", "bohemian", "streetwear"},
		AccessoryLevel:  AccessoryModerate,
	},
	"formal": {
		Name:            "formal",
		Formality:       5,
		PreferredColors: []string{"black", "navy", "burgundy", "cream", "white"},
		AvoidedColors:   []string{"orange", "yellow"},
		PreferredStyles: []string{"formal", "elegant", "classic"},
		AccessoryLevel:  AccessoryMinimal,
	},
	"date": {
		Name:            "date",
		Formality:       3,
		PreferredColors: []string{"red", "black", "burgundy", "pink", "navy"},
		PreferredStyles: []string{"elegant", "romantic", "smart-casual", "vintage"},
		AccessoryLevel:  AccessoryBold,
	},
	"creative": {
		Name:            "creative",
		Formality:       2,
		PreferredColors: []string{"purple", "teal", "orange", "mustard", "coral"},
		PreferredStyles: []string{"bohemian", "artsy", "vintage", "streetwear", "eclectic"},
		AccessoryLevel:  AccessoryBold,
	},
	"social": {
		Name:            "social",
		Formality:       2,
		PreferredColors: []string{"blue", "green", "coral", "white", "lavender"},
		PreferredStyles: []string{"smart-casual", "casual", "trendy", "contemporary"},
		AccessoryLevel:  AccessoryModerate,
	},
}

// ProfileForOccasion returns the occasion profile for a named occasion,
// falling back to the casual profile for unknown occasions.
func ProfileForOccasion(occasion string) OccasionProfile {
	if profile, ok := occasionProfiles[strings.ToLower(strings.TrimSpace(occasion))]; ok {
		return profile
	}
	fallback := occasionProfiles["casual"]
	return fallback
}

// KnownOccasions lists the named occasions in the fixed table.
func KnownOccasions() []string {
	return []string{"work", "casual", "formal", "date", "creative", "social"}
}
