package types

// StyleProfile captures a user's styling preferences. It is owned by the
// user profile subsystem and is a read-only input to the engine.
type StyleProfile struct {
	PreferredStyle     string   `json:"preferred_style,omitempty"`
	FavoriteColors     []string `json:"favorite_colors,omitempty"`
	ColorPaletteColors []string `json:"color_palette_colors,omitempty"`
	LifestyleTags      []string `json:"lifestyle_tags,omitempty"`
}

// PreferenceSummary aggregates explicit outfit feedback into learned
// preference signals. Produced by a UserPreferenceStore implementation.
type PreferenceSummary struct {
	LikedColors   []string `json:"liked_colors,omitempty"`
	LikedStyles   []string `json:"liked_styles,omitempty"`
	AvoidedColors []string `json:"avoided_colors,omitempty"`
	AvoidedStyles []string `json:"avoided_styles,omitempty"`
	FeedbackCount int      `json:"feedback_count"`
}

// Merged returns a copy of the profile enriched with learned preferences:
// liked colors are appended to favorite colors (deduplicated), and the
// preferred style falls back to the most-liked style when unset.
func (p *StyleProfile) Merged(summary *PreferenceSummary) StyleProfile {
	merged := StyleProfile{
		PreferredStyle:     p.PreferredStyle,
		FavoriteColors:     append([]string(nil), p.FavoriteColors...),
		ColorPaletteColors: append([]string(nil), p.ColorPaletteColors...),
		LifestyleTags:      append([]string(nil), p.LifestyleTags...),
	}
	if summary == nil {
		return merged
	}
	for _, c := range summary.LikedColors {
		if !containsFold(merged.FavoriteColors, c) {
			merged.FavoriteColors = append(merged.FavoriteColors, c)
		}
	}
	if merged.PreferredStyle == "" && len(summary.LikedStyles) > 0 {
		merged.PreferredStyle = summary.LikedStyles[0]
	}
	return merged
}
