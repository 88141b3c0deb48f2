package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-stylist/internal/db"
	"github.com/jonathan/outfit-stylist/internal/scoring"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// RecommendRequest is the body of POST /recommendations. Items may be sent
// inline, or resolved from a stored wardrobe via user_id.
type RecommendRequest struct {
	UserID  string                 `json:"user_id,omitempty"`
	Items   []types.WardrobeItem   `json:"items,omitempty"`
	Profile *types.StyleProfile    `json:"profile,omitempty"`
	Context types.RequestContext   `json:"context"`
	Options types.RecommendOptions `json:"options"`
}

// AnalyzeRequest is the body of POST /outfits/analyze.
type AnalyzeRequest struct {
	Items   []types.WardrobeItem `json:"items"`
	Profile *types.StyleProfile  `json:"profile,omitempty"`
	Context types.RequestContext `json:"context"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	items := req.Items
	profile := req.Profile

	if len(items) == 0 && req.UserID != "" {
		if s.db == nil {
			writeError(w, &ErrStorageUnavailable{})
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, &ErrValidation{Field: "user_id", Message: "must be a UUID"})
			return
		}
		items, err = s.db.ListWardrobeItems(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if profile == nil {
			stored, err := s.db.GetStyleProfile(r.Context(), userID)
			if err == nil {
				profile = stored
			} else if err != db.ErrNotFound {
				writeError(w, err)
				return
			}
		}
		if summary, err := s.prefs.GetPreferences(r.Context(), userID); err == nil && profile != nil {
			merged := profile.Merged(summary)
			profile = &merged
		}
	}

	if profile == nil {
		profile = &types.StyleProfile{}
	}

	recommendations, err := s.engine.Recommend(r.Context(), items, profile, &req.Context, req.Options)
	if err != nil {
		writeError(w, &ErrValidation{Field: "request", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if len(req.Items) == 0 {
		writeError(w, &ErrValidation{Field: "items", Message: "at least one item required"})
		return
	}
	if err := req.Context.Validate(); err != nil {
		writeError(w, &ErrValidation{Field: "context", Message: err.Error()})
		return
	}

	profile := req.Profile
	if profile == nil {
		profile = &types.StyleProfile{}
	}

	outfit := types.CandidateOutfit{Items: req.Items}
	scorer := &scoring.Scorer{}
	analysis := scorer.Score(&outfit, profile, &req.Context)

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":    analysis,
		"description": scoring.Describe(&outfit, &req.Context),
	})
}

func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		writeError(w, &ErrStorageUnavailable{})
		return false
	}
	return true
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, &ErrValidation{Field: "user_id", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return userID, true
}

func (s *Server) handleListWardrobe(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	items, err := s.db.ListWardrobeItems(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var item types.WardrobeItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if _, valid := types.ParseCategory(item.Category); !valid || len(item.Colors) == 0 {
		writeError(w, &ErrValidation{Field: "item", Message: "category and colors are required"})
		return
	}

	id, err := s.db.CreateWardrobeItem(r.Context(), userID, &item)
	if err != nil {
		writeError(w, err)
		return
	}
	item.ID = id.String()
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(r.PathValue("item_id"))
	if err != nil {
		writeError(w, &ErrValidation{Field: "item_id", Message: "must be a UUID"})
		return
	}

	if err := s.db.DeleteWardrobeItem(r.Context(), userID, itemID); err != nil {
		if err == db.ErrNotFound {
			writeError(w, &ErrItemNotFound{ItemID: itemID.String()})
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetStyleProfile(r.Context(), userID)
	if err != nil {
		if err == db.ErrNotFound {
			writeError(w, &ErrProfileNotFound{UserID: userID.String()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var profile types.StyleProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := s.db.UpsertStyleProfile(r.Context(), userID, &profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleAddFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var feedback types.OutfitFeedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	feedback.UserID = userID

	if err := s.prefs.AddFeedback(r.Context(), &feedback); err != nil {
		writeError(w, &ErrValidation{Field: "feedback", Message: err.Error()})
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	summary, err := s.prefs.GetPreferences(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
