package preferences

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outfit-stylist/internal/types"
)

func likedFeedback(userID uuid.UUID, colors, styles []string) types.OutfitFeedback {
	return types.OutfitFeedback{
		UserID:  userID,
		ItemIDs: []string{"item-1"},
		Verdict: types.VerdictLiked,
		Colors:  colors,
		Styles:  styles,
	}
}

func TestSummarize_RecurringSignals(t *testing.T) {
	userID := uuid.New()
	feedback := []types.OutfitFeedback{
		likedFeedback(userID, []string{"navy", "white"}, []string{"casual"}),
		likedFeedback(userID, []string{"navy"}, []string{"casual"}),
		likedFeedback(userID, []string{"red"}, []string{"formal"}),
	}

	summary := Summarize(feedback)

	assert.Equal(t, []string{"navy"}, summary.LikedColors)
	assert.Equal(t, []string{"casual"}, summary.LikedStyles)
	assert.Equal(t, 3, summary.FeedbackCount)
}

func TestSummarize_DislikesBecomeAvoided(t *testing.T) {
	userID := uuid.New()
	disliked := types.OutfitFeedback{
		UserID:  userID,
		ItemIDs: []string{"item-1"},
		Verdict: types.VerdictDisliked,
		Colors:  []string{"orange"},
		Styles:  []string{"sporty"},
	}

	summary := Summarize([]types.OutfitFeedback{disliked, disliked})

	assert.Equal(t, []string{"orange"}, summary.AvoidedColors)
	assert.Equal(t, []string{"sporty"}, summary.AvoidedStyles)
	assert.Empty(t, summary.LikedColors)
}

func TestSummarize_OrderedByFrequency(t *testing.T) {
	userID := uuid.New()
	feedback := []types.OutfitFeedback{
		likedFeedback(userID, []string{"blue", "green"}, nil),
		likedFeedback(userID, []string{"blue", "green"}, nil),
		likedFeedback(userID, []string{"blue"}, nil),
	}

	summary := Summarize(feedback)

	assert.Equal(t, []string{"blue", "green"}, summary.LikedColors)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Empty(t, summary.LikedColors)
	assert.Equal(t, 0, summary.FeedbackCount)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		fb := likedFeedback(userID, []string{"navy"}, []string{"minimalist"})
		require.NoError(t, store.AddFeedback(ctx, &fb))
	}

	summary, err := store.GetPreferences(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"navy"}, summary.LikedColors)
	assert.Equal(t, []string{"minimalist"}, summary.LikedStyles)
	assert.Equal(t, 2, summary.FeedbackCount)
}

func TestMemoryStore_RejectsInvalidFeedback(t *testing.T) {
	store := NewMemoryStore()

	err := store.AddFeedback(context.Background(), &types.OutfitFeedback{
		UserID:  uuid.New(),
		Verdict: types.VerdictLiked,
		// missing item ids
	})

	assert.Error(t, err)
}

func TestMemoryStore_IsolatesUsers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	fb := likedFeedback(alice, []string{"navy"}, nil)
	require.NoError(t, store.AddFeedback(ctx, &fb))

	summary, err := store.GetPreferences(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.FeedbackCount)
}

func TestProfileMerged_AppendsLikedColors(t *testing.T) {
	profile := &types.StyleProfile{FavoriteColors: []string{"navy"}}
	summary := &types.PreferenceSummary{
		LikedColors: []string{"navy", "sage"},
		LikedStyles: []string{"minimalist"},
	}

	merged := profile.Merged(summary)

	assert.Equal(t, []string{"navy", "sage"}, merged.FavoriteColors)
	assert.Equal(t, "minimalist", merged.PreferredStyle)

	explicit := &types.StyleProfile{PreferredStyle: "classic"}
	assert.Equal(t, "classic", explicit.Merged(summary).PreferredStyle)
}
