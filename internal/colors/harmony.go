// Package colors evaluates whether sets of color names read well together.
//
// Harmony classification follows a fixed rule table with priority
// neutral > complementary > analogous; within a table the first matching
// entry wins. Confidence is always in [0,1].
package colors

import "strings"

// Harmony classification labels.
const (
	HarmonyMonochrome    = "monochrome"
	HarmonyNeutral       = "neutral"
	HarmonyComplementary = "complementary"
	HarmonyAnalogous     = "analogous"
	HarmonyMixed         = "mixed"
)

// Rule contributions and penalties.
const (
	neutralBaseline        = 0.8
	complementaryIncrement = 0.7
	analogousIncrement     = 0.6
	busyPenalty            = 0.2
	busyThreshold          = 4
	harmoniousThreshold    = 0.5
)

// Harmony is the result of evaluating a color set.
type Harmony struct {
	IsHarmonious bool    `json:"is_harmonious"`
	Type         string  `json:"harmony_type"`
	Confidence   float64 `json:"confidence"`
}

var neutrals = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"grey":  true,
	"beige": true,
	"navy":  true,
	"brown": true,
	"cream": true,
	"tan":   true,
	"khaki": true,
}

// complementaryPairs lists color pairings that read as intentional contrast.
var complementaryPairs = [][2]string{
	{"red", "green"},
	{"blue", "orange"},
	{"yellow", "purple"},
	{"pink", "mint"},
	{"coral", "teal"},
	{"burgundy", "forest"},
	{"lavender", "sage"},
}

// analogousGroups lists three-color families adjacent on the color wheel.
var analogousGroups = [][]string{
	{"red", "orange", "pink"},
	{"blue", "teal", "green"},
	{"yellow", "orange", "coral"},
	{"purple", "lavender", "pink"},
	{"green", "sage", "mint"},
	{"blue", "navy", "purple"},
}

// IsNeutral reports whether a single color name is in the neutral set.
func IsNeutral(color string) bool {
	return neutrals[strings.ToLower(strings.TrimSpace(color))]
}

// Normalize lowercases, trims, deduplicates, and drops empty color names,
// preserving first-appearance order.
func Normalize(colorSets ...[]string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, set := range colorSets {
		for _, c := range set {
			normalized := strings.ToLower(strings.TrimSpace(c))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			out = append(out, normalized)
		}
	}
	return out
}

// Evaluate classifies a merged color set. Fewer than 2 distinct colors is
// trivially harmonious ("monochrome", confidence 1.0).
func Evaluate(colorSet []string) Harmony {
	normalized := Normalize(colorSet)

	if len(normalized) < 2 {
		return Harmony{IsHarmonious: true, Type: HarmonyMonochrome, Confidence: 1.0}
	}

	present := make(map[string]bool, len(normalized))
	nonNeutral := 0
	for _, c := range normalized {
		present[c] = true
		if !neutrals[c] {
			nonNeutral++
		}
	}

	// Neutral-dominant short circuit: at most one non-neutral color.
	if nonNeutral <= 1 {
		return Harmony{IsHarmonious: true, Type: HarmonyNeutral, Confidence: neutralBaseline}
	}

	accumulator := 0.0
	comparisons := 0
	harmonyType := ""

	for _, pair := range complementaryPairs {
		if present[pair[0]] && present[pair[1]] {
			accumulator += complementaryIncrement
			comparisons++
			if harmonyType == "" {
				harmonyType = HarmonyComplementary
			}
		}
	}

	for _, group := range analogousGroups {
		matches := 0
		for _, c := range group {
			if present[c] {
				matches++
			}
		}
		if matches >= 2 {
			accumulator += analogousIncrement
			comparisons++
			if harmonyType == "" {
				harmonyType = HarmonyAnalogous
			}
		}
	}

	// Too many distinct colors reads as busy.
	if len(normalized) > busyThreshold {
		accumulator -= busyPenalty
	}

	confidence := accumulator / float64(max(1, comparisons))
	confidence = clamp01(confidence)

	if harmonyType == "" {
		harmonyType = HarmonyMixed
	}

	return Harmony{
		IsHarmonious: confidence >= harmoniousThreshold,
		Type:         harmonyType,
		Confidence:   confidence,
	}
}

// EvaluatePair classifies the merged union of two color sets, used when
// judging whether two items can be worn together.
func EvaluatePair(colorsA, colorsB []string) Harmony {
	return Evaluate(Normalize(colorsA, colorsB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
