package tipjar

import (
	"errors"
	"net/http"
	"time"

	"github.com/tipjarz/tipjarz/internal/database"
	"github.com/tipjarz/tipjarz/internal/httputil"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

// handleCreateGatedContent creates a gated content record.
func (s *Service) handleCreateGatedContent(w http.ResponseWriter, r *http.Request) {
	var in CreateGatedContentInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	content := &tipjarsupabase.GatedContent{
		ContentID:     generateID("content"),
		CreatorID:     in.CreatorID,
		SecretContent: in.SecretContent,
		MinTipAmount:  in.MinTipAmount,
		UnlockLimit:   in.UnlockLimit,
		Title:         in.Title,
		Description:   in.Description,
	}
	if err := s.db.CreateGatedContent(r.Context(), content); err != nil {
		s.log.Error(r.Context(), "create gated content failed", err)
		httputil.InternalError(w, "failed to create gated content")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"content": content,
	})
}

// gatedContentListItem is the list projection of gated content. It has
// no secret field at all, so the secret cannot leak from list views.
type gatedContentListItem struct {
	ContentID    string    `json:"content_id"`
	CreatorID    string    `json:"creator_id"`
	MinTipAmount string    `json:"min_tip_amount"`
	UnlockLimit  *int      `json:"unlock_limit,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// handleListGatedContent lists a creator's gated content with secrets
// redacted, newest first.
func (s *Service) handleListGatedContent(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("creatorId")
	if creatorID == "" {
		httputil.BadRequest(w, "creator ID is required")
		return
	}

	rows, err := s.db.ListGatedContent(r.Context(), creatorID)
	if err != nil {
		s.log.Error(r.Context(), "list gated content failed", err)
		httputil.InternalError(w, "failed to fetch gated content")
		return
	}

	items := make([]gatedContentListItem, 0, len(rows))
	for _, gc := range rows {
		items = append(items, gatedContentListItem{
			ContentID:    gc.ContentID,
			CreatorID:    gc.CreatorID,
			MinTipAmount: gc.MinTipAmount,
			UnlockLimit:  gc.UnlockLimit,
			Title:        gc.Title,
			Description:  gc.Description,
			CreatedAt:    gc.CreatedAt,
			UpdatedAt:    gc.UpdatedAt,
		})
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"content": items,
	})
}

// handleUnlockContent evaluates unlock eligibility and reveals the
// secret on success. A shortfall is a first-class business outcome
// carrying progress detail, not an opaque error.
func (s *Service) handleUnlockContent(w http.ResponseWriter, r *http.Request) {
	var in UnlockInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	unlocked, err := s.EvaluateUnlock(r.Context(), in.ContentID, in.TipperAddress)
	if err != nil {
		var insufficient *InsufficientTipsError
		switch {
		case errors.As(err, &insufficient):
			httputil.WriteJSON(w, http.StatusForbidden, map[string]any{
				"success":   false,
				"error":     "insufficient tips to unlock content",
				"required":  insufficient.Required,
				"current":   insufficient.Current,
				"remaining": insufficient.Remaining,
			})
		case errors.Is(err, database.ErrNotFound):
			httputil.NotFound(w, "content not found")
		default:
			s.log.Error(r.Context(), "unlock evaluation failed", err)
			httputil.InternalError(w, "failed to unlock content")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"content": unlocked,
	})
}
