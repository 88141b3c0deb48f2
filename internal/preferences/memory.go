package preferences

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-stylist/internal/types"
)

// MemoryStore is an in-memory Store for tests and single-process CLI use.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	feedback map[uuid.UUID][]types.OutfitFeedback
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{feedback: make(map[uuid.UUID][]types.OutfitFeedback)}
}

// AddFeedback validates and records one feedback event.
func (s *MemoryStore) AddFeedback(_ context.Context, feedback *types.OutfitFeedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}

	stored := *feedback
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback[stored.UserID] = append(s.feedback[stored.UserID], stored)
	return nil
}

// GetPreferences summarizes all recorded feedback for a user.
func (s *MemoryStore) GetPreferences(_ context.Context, userID uuid.UUID) (*types.PreferenceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.feedback[userID]), nil
}
