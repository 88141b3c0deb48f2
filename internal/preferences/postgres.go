package preferences

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// PostgresStore is a Store backed by the outfit_feedback table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// AddFeedback validates and inserts one feedback event.
func (s *PostgresStore) AddFeedback(ctx context.Context, feedback *types.OutfitFeedback) error {
	if err := feedback.Validate(); err != nil {
		return fmt.Errorf("invalid feedback: %w", err)
	}

	id := feedback.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := feedback.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO outfit_feedback (id, user_id, item_ids, verdict, occasion, colors, styles, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, feedback.UserID, feedback.ItemIDs, string(feedback.Verdict),
		feedback.Occasion, feedback.Colors, feedback.Styles, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// GetPreferences loads and summarizes all feedback for a user.
func (s *PostgresStore) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.PreferenceSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, item_ids, verdict, occasion, colors, styles, created_at
		 FROM outfit_feedback
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	feedback := make([]types.OutfitFeedback, 0)
	for rows.Next() {
		var fb types.OutfitFeedback
		var verdict string
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.ItemIDs, &verdict,
			&fb.Occasion, &fb.Colors, &fb.Styles, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		fb.Verdict = types.FeedbackVerdict(verdict)
		feedback = append(feedback, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return Summarize(feedback), nil
}
