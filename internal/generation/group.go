// Package generation enumerates candidate outfits from a filtered wardrobe.
package generation

import "github.com/jonathan/outfit-stylist/internal/types"

// GroupByCategory buckets items into the closed category enumeration.
// Malformed items (missing id, colors, or an unrecognized category) are
// skipped and returned separately; one bad item never fails the request.
func GroupByCategory(items []types.WardrobeItem) (map[types.Category][]types.WardrobeItem, []types.WardrobeItem) {
	groups := make(map[types.Category][]types.WardrobeItem)
	skipped := make([]types.WardrobeItem, 0)
	for i := range items {
		if !items[i].Valid() {
			skipped = append(skipped, items[i])
			continue
		}
		category, _ := types.ParseCategory(items[i].Category)
		groups[category] = append(groups[category], items[i])
	}
	return groups, skipped
}

// adjacentCategories maps each category to the categories a statement piece
// in it pairs with. Used instead of loose string matching so pairing rules
// stay testable.
var adjacentCategories = map[types.Category][]types.Category{
	types.CategoryTops:        {types.CategoryBottoms, types.CategoryOuterwear},
	types.CategoryBottoms:     {types.CategoryTops, types.CategoryShoes},
	types.CategoryDresses:     {types.CategoryShoes, types.CategoryOuterwear},
	types.CategoryOuterwear:   {types.CategoryTops, types.CategoryDresses},
	types.CategoryShoes:       {types.CategoryBottoms, types.CategoryDresses},
	types.CategoryAccessories: {types.CategoryTops, types.CategoryDresses},
	types.CategoryJewelry:     {types.CategoryTops, types.CategoryDresses},
	types.CategoryBags:        {types.CategoryOuterwear, types.CategoryDresses},
}

// AdjacentCategories returns the pairing categories for a statement piece's
// category, including the category itself.
func AdjacentCategories(category types.Category) []types.Category {
	out := []types.Category{category}
	return append(out, adjacentCategories[category]...)
}
