package types

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateOutfit is a transient, unscored grouping of wardrobe items
// produced by the combination generator. Item order carries no meaning and
// no item appears twice.
type CandidateOutfit struct {
	Items []WardrobeItem `json:"items"`
}

// ItemIDs returns the sorted item ids of the outfit. Used as a stable
// identity signature for deduplication and caching.
func (o *CandidateOutfit) ItemIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)
	return ids
}

// Signature returns a stable string identity for the outfit's item set.
func (o *CandidateOutfit) Signature() string {
	return strings.Join(o.ItemIDs(), "|")
}

// AllColors returns the union of all item color names, normalized to
// lowercase, order of first appearance.
func (o *CandidateOutfit) AllColors() []string {
	seen := make(map[string]bool)
	colors := make([]string, 0)
	for _, item := range o.Items {
		for _, c := range item.Colors {
			normalized := strings.ToLower(strings.TrimSpace(c))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			colors = append(colors, normalized)
		}
	}
	return colors
}

// OutfitAnalysis holds the per-dimension scores and derived narrative for
// one candidate outfit. OverallScore is a convex combination of the
// dimension scores applicable to the request context.
type OutfitAnalysis struct {
	ColorHarmony        float64 `json:"color_harmony"`
	HarmonyType         string  `json:"harmony_type"`
	StyleCoherence      float64 `json:"style_coherence"`
	OccasionFit         float64 `json:"occasion_fit"`
	TimeOfDayFit        float64 `json:"time_of_day_fit"`
	WeatherAppropriate  bool    `json:"weather_appropriate"`
	SeasonalAppropriate bool    `json:"seasonal_appropriate"`
	PersonalAlignment   float64 `json:"personal_alignment"`
	Versatility         float64 `json:"versatility"`
	TrendRelevance      float64 `json:"trend_relevance"`
	OverallScore        float64 `json:"overall_score"`

	Reasoning    []string `json:"reasoning,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	ColorStory   string   `json:"color_story,omitempty"`
}

// Recommendation is one ranked result returned to the calling layer.
type Recommendation struct {
	Outfit      []WardrobeItem `json:"outfit"`
	Analysis    OutfitAnalysis `json:"analysis"`
	Description string         `json:"description"`
	Reasoning   []string       `json:"reasoning,omitempty"`
}

// Default option values for a recommendation request.
const (
	DefaultMaxRecommendations = 6
	DefaultDiversityFactor    = 0.7
	DefaultMaxCombinations    = 30
)

// RecommendOptions tunes one recommendation request.
type RecommendOptions struct {
	MaxRecommendations int     `json:"max_recommendations,omitempty" validate:"omitempty,min=1,max=50"`
	IncludeAccessories *bool   `json:"include_accessories,omitempty"`
	DiversityFactor    float64 `json:"diversity_factor,omitempty" validate:"omitempty,min=0,max=1"`
	MaxCombinations    int     `json:"max_combinations,omitempty" validate:"omitempty,min=1,max=500"`
	SoftOccasionFilter bool    `json:"soft_occasion_filter,omitempty"`
}

// WithDefaults returns a copy with unset fields replaced by defaults.
func (o RecommendOptions) WithDefaults() RecommendOptions {
	if o.MaxRecommendations == 0 {
		o.MaxRecommendations = DefaultMaxRecommendations
	}
	if o.IncludeAccessories == nil {
		include := true
		o.IncludeAccessories = &include
	}
	if o.DiversityFactor == 0 {
		o.DiversityFactor = DefaultDiversityFactor
	}
	if o.MaxCombinations == 0 {
		o.MaxCombinations = DefaultMaxCombinations
	}
	return o
}

// AccessoriesEnabled reports the effective include-accessories setting.
func (o *RecommendOptions) AccessoriesEnabled() bool {
	return o.IncludeAccessories == nil || *o.IncludeAccessories
}

// Validate validates the options using the validator.
func (o *RecommendOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Validate validates the request context using the validator.
func (c *RequestContext) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
