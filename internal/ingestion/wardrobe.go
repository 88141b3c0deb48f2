// Package ingestion loads wardrobe and style profile files from disk,
// validating them against their JSON Schemas before decoding.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/outfit-stylist/internal/schemas"
	"github.com/jonathan/outfit-stylist/internal/types"
)

const (
	wardrobeSchemaPath = "schemas/wardrobe.schema.json"
	profileSchemaPath  = "schemas/style_profile.schema.json"
)

// LoadWardrobe reads a wardrobe JSON file. The file is validated against the
// wardrobe schema when the schema file can be located; items that survive
// decoding but fail basic validation are skipped and reported as warnings
// rather than failing the whole load.
func LoadWardrobe(path string) ([]types.WardrobeItem, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read wardrobe file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(wardrobeSchemaPath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read wardrobe schema: %w", err)
		}
		if err := schemas.ValidateJSONBytes(schemaContent, data); err != nil {
			return nil, nil, fmt.Errorf("wardrobe file %s: %w", path, err)
		}
	}

	var raw []types.WardrobeItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse wardrobe JSON: %w", err)
	}

	items, warnings := filterItems(raw)
	return items, warnings, nil
}

// filterItems drops items lacking the fields the engine requires, returning
// one warning per dropped item.
func filterItems(raw []types.WardrobeItem) ([]types.WardrobeItem, []string) {
	items := make([]types.WardrobeItem, 0, len(raw))
	var warnings []string
	for i, item := range raw {
		if !item.Valid() {
			warnings = append(warnings, fmt.Sprintf("skipping malformed item %d (id=%q): missing id, colors, or known category", i, item.ID))
			continue
		}
		items = append(items, item)
	}
	return items, warnings
}

// LoadProfile reads a style profile JSON file, validated against the style
// profile schema when it can be located.
func LoadProfile(path string) (*types.StyleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(profileSchemaPath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile schema: %w", err)
		}
		if err := schemas.ValidateJSONBytes(schemaContent, data); err != nil {
			return nil, fmt.Errorf("profile file %s: %w", path, err)
		}
	}

	var profile types.StyleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	return &profile, nil
}
