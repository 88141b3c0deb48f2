package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// CreateWardrobeItem inserts one item for a user and returns its generated id.
func (db *DB) CreateWardrobeItem(ctx context.Context, userID uuid.UUID, item *types.WardrobeItem) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO wardrobe_items (id, user_id, name, category, colors, style, occasions, seasons, tags, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, userID, item.Name, item.Category, item.Colors, item.Style,
		item.Occasions, item.Seasons, item.Tags, item.ImageURL,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert wardrobe item: %w", err)
	}
	return id, nil
}

// ListWardrobeItems returns all items for a user in insertion order.
func (db *DB) ListWardrobeItems(ctx context.Context, userID uuid.UUID) ([]types.WardrobeItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, category, colors, style, occasions, seasons, tags, image_url
		 FROM wardrobe_items
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query wardrobe items: %w", err)
	}
	defer rows.Close()

	items := make([]types.WardrobeItem, 0)
	for rows.Next() {
		var item types.WardrobeItem
		var id uuid.UUID
		if err := rows.Scan(&id, &item.Name, &item.Category, &item.Colors,
			&item.Style, &item.Occasions, &item.Seasons, &item.Tags, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan wardrobe item: %w", err)
		}
		item.ID = id.String()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wardrobe items: %w", err)
	}
	return items, nil
}

// DeleteWardrobeItem removes one item owned by the user.
func (db *DB) DeleteWardrobeItem(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM wardrobe_items WHERE id = $1 AND user_id = $2`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete wardrobe item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStyleProfile loads a user's style profile.
func (db *DB) GetStyleProfile(ctx context.Context, userID uuid.UUID) (*types.StyleProfile, error) {
	var profile types.StyleProfile
	err := db.pool.QueryRow(ctx,
		`SELECT preferred_style, favorite_colors, color_palette_colors, lifestyle_tags
		 FROM style_profiles
		 WHERE user_id = $1`,
		userID,
	).Scan(&profile.PreferredStyle, &profile.FavoriteColors,
		&profile.ColorPaletteColors, &profile.LifestyleTags)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load style profile: %w", err)
	}
	return &profile, nil
}

// UpsertStyleProfile creates or replaces a user's style profile.
func (db *DB) UpsertStyleProfile(ctx context.Context, userID uuid.UUID, profile *types.StyleProfile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO style_profiles (user_id, preferred_style, favorite_colors, color_palette_colors, lifestyle_tags)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   preferred_style = $2, favorite_colors = $3, color_palette_colors = $4,
		   lifestyle_tags = $5, updated_at = NOW()`,
		userID, profile.PreferredStyle, profile.FavoriteColors,
		profile.ColorPaletteColors, profile.LifestyleTags,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert style profile: %w", err)
	}
	return nil
}
