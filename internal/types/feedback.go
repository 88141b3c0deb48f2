package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FeedbackVerdict is the user's reaction to a recommended outfit.
type FeedbackVerdict string

const (
	VerdictLiked    FeedbackVerdict = "liked"
	VerdictDisliked FeedbackVerdict = "disliked"
	VerdictWorn     FeedbackVerdict = "worn"
)

// OutfitFeedback records one explicit user reaction to a recommendation.
// Stored through a UserPreferenceStore, never by the engine itself.
type OutfitFeedback struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id" validate:"required"`
	ItemIDs   []string        `json:"item_ids" validate:"required,min=1"`
	Verdict   FeedbackVerdict `json:"verdict" validate:"required,oneof=liked disliked worn"`
	Occasion  string          `json:"occasion,omitempty"`
	Colors    []string        `json:"colors,omitempty"`
	Styles    []string        `json:"styles,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate validates the feedback record using the validator.
func (f *OutfitFeedback) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
