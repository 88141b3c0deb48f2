// Package types provides type definitions for structured data used throughout the outfit-stylist system.
package types

import "strings"

// Category identifies the wardrobe slot an item occupies.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryJewelry     Category = "jewelry"
	CategoryBags        Category = "bags"
)

// AllCategories lists every known category in canonical order.
var AllCategories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
	CategoryJewelry,
	CategoryBags,
}

// categoryAliases maps loose category spellings from the tag inference
// collaborator onto the closed enumeration.
var categoryAliases = map[string]Category{
	"top":       CategoryTops,
	"tops":      CategoryTops,
	"shirt":     CategoryTops,
	"blouse":    CategoryTops,
	"bottom":    CategoryBottoms,
	"bottoms":   CategoryBottoms,
	"pants":     CategoryBottoms,
	"skirt":     CategoryBottoms,
	"dress":     CategoryDresses,
	"dresses":   CategoryDresses,
	"outerwear": CategoryOuterwear,
	"jacket":    CategoryOuterwear,
	"coat":      CategoryOuterwear,
	"shoe":      CategoryShoes,
	"shoes":     CategoryShoes,
	"accessory": CategoryAccessories,
	"accessories": CategoryAccessories,
	"jewelry":   CategoryJewelry,
	"bag":       CategoryBags,
	"bags":      CategoryBags,
}

// ParseCategory resolves a raw category string to a known Category.
// Returns false when the string matches no known category.
func ParseCategory(raw string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	if cat, ok := categoryAliases[normalized]; ok {
		return cat, true
	}
	return "", false
}

// WardrobeItem represents a single catalogued garment. Items are created by
// the upload pipeline and are immutable from the engine's point of view.
type WardrobeItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Category  string   `json:"category"`
	Colors    []string `json:"colors"`
	Style     string   `json:"style,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Seasons   []string `json:"seasons,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// TagSet is the structured output shape of the external tag inference
// collaborator. The engine never calls that service; it only consumes this
// shape when items are constructed upstream.
type TagSet struct {
	Category   string   `json:"category"`
	Style      string   `json:"style"`
	Colors     []string `json:"colors"`
	Occasions  []string `json:"occasions"`
	Seasons    []string `json:"seasons"`
	Materials  []string `json:"materials,omitempty"`
	Confidence float64  `json:"confidence"`
}

// HasOccasion reports whether the item carries the given occasion tag
// (case-insensitive).
func (w *WardrobeItem) HasOccasion(occasion string) bool {
	return containsFold(w.Occasions, occasion)
}

// HasSeason reports whether the item carries the given season tag
// (case-insensitive).
func (w *WardrobeItem) HasSeason(season string) bool {
	return containsFold(w.Seasons, season)
}

// HasTag reports whether the item carries the given free-form tag
// (case-insensitive).
func (w *WardrobeItem) HasTag(tag string) bool {
	return containsFold(w.Tags, tag)
}

// HasColor reports whether the item includes the given color name
// (case-insensitive).
func (w *WardrobeItem) HasColor(color string) bool {
	return containsFold(w.Colors, color)
}

// Valid reports whether the item carries the fields the engine requires.
// Items failing this check are skipped during grouping rather than failing
// the whole request.
func (w *WardrobeItem) Valid() bool {
	if w.ID == "" || len(w.Colors) == 0 {
		return false
	}
	_, ok := ParseCategory(w.Category)
	return ok
}

func containsFold(list []string, target string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
