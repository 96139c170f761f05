package tipjar

import (
	"errors"
	"net/http"

	"github.com/tipjarz/tipjarz/internal/database"
	"github.com/tipjarz/tipjarz/internal/httputil"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

// handleCreateCreator creates a creator profile.
func (s *Service) handleCreateCreator(w http.ResponseWriter, r *http.Request) {
	var in CreateCreatorInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	creator := &tipjarsupabase.Creator{
		CreatorID:     in.CreatorID,
		WalletAddress: in.WalletAddress,
		Bio:           in.Bio,
		Content:       in.Content,
		Name:          in.Name,
		Avatar:        in.Avatar,
	}
	if err := s.db.CreateCreator(r.Context(), creator); err != nil {
		s.log.Error(r.Context(), "create creator failed", err)
		httputil.InternalError(w, "failed to create creator")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"creator": creator,
	})
}

// creatorWithStats is the GET /creators projection: the profile plus the
// derived tip aggregate.
type creatorWithStats struct {
	*tipjarsupabase.Creator
	Stats *CreatorStats `json:"stats"`
}

// handleGetCreator fetches a profile with its stats.
func (s *Service) handleGetCreator(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("creatorId")
	if creatorID == "" {
		httputil.BadRequest(w, "creator ID is required")
		return
	}

	creator, err := s.db.GetCreator(r.Context(), creatorID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			httputil.NotFound(w, "creator not found")
			return
		}
		s.log.Error(r.Context(), "get creator failed", err)
		httputil.InternalError(w, "failed to fetch creator")
		return
	}

	stats, err := s.CreatorStats(r.Context(), creatorID)
	if err != nil {
		s.log.Error(r.Context(), "creator stats failed", err)
		httputil.InternalError(w, "failed to fetch creator")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"creator": creatorWithStats{Creator: creator, Stats: stats},
	})
}

// handleUpdateCreator applies a partial profile update.
func (s *Service) handleUpdateCreator(w http.ResponseWriter, r *http.Request) {
	var in UpdateCreatorInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if in.CreatorID == "" {
		httputil.BadRequest(w, "creator ID is required")
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	upd := &tipjarsupabase.CreatorUpdate{
		Bio:     in.Bio,
		Content: in.Content,
		Name:    in.Name,
		Avatar:  in.Avatar,
	}
	creator, err := s.db.UpdateCreator(r.Context(), in.CreatorID, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			httputil.NotFound(w, "creator not found")
			return
		}
		s.log.Error(r.Context(), "update creator failed", err)
		httputil.InternalError(w, "failed to update creator")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"creator": creator,
	})
}
