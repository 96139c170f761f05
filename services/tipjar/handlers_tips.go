package tipjar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tipjarz/tipjarz/internal/database"
	"github.com/tipjarz/tipjarz/internal/httputil"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

const (
	defaultTipListLimit = 10
	maxTipListLimit     = 100
)

// handleCreateTip records a new tip. Tips always enter as pending; a
// follow-up PUT /tips moves them to confirmed or failed.
func (s *Service) handleCreateTip(w http.ResponseWriter, r *http.Request) {
	var in CreateTipInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	tip := &tipjarsupabase.Tip{
		TipID:           generateID("tip"),
		CreatorID:       in.CreatorID,
		TipperAddress:   in.TipperAddress,
		Amount:          in.Amount,
		Currency:        in.Currency,
		Message:         in.Message,
		TransactionHash: in.TransactionHash,
		Status:          tipjarsupabase.TipStatusPending,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.db.CreateTip(r.Context(), tip); err != nil {
		s.log.Error(r.Context(), "create tip failed", err)
		httputil.InternalError(w, "failed to create tip")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tip":     tip,
	})
}

// handleListTips lists a creator's confirmed tips, newest first.
func (s *Service) handleListTips(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("creatorId")
	if creatorID == "" {
		httputil.BadRequest(w, "creator ID is required")
		return
	}

	limit := defaultTipListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxTipListLimit {
			limit = l
		}
	}

	tips, err := s.db.ListConfirmedTips(r.Context(), creatorID, limit)
	if err != nil {
		s.log.Error(r.Context(), "list tips failed", err)
		httputil.InternalError(w, "failed to fetch tips")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tips":    tips,
	})
}

// handleUpdateTip updates a tip's settlement status. No terminal-state
// guard is enforced; the client drives the pending -> confirmed/failed
// transition.
func (s *Service) handleUpdateTip(w http.ResponseWriter, r *http.Request) {
	var in UpdateTipInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	upd := &tipjarsupabase.TipUpdate{
		Status: tipjarsupabase.TipStatus(in.Status),
	}
	if in.TransactionHash != "" {
		upd.TransactionHash = &in.TransactionHash
	}

	tip, err := s.db.UpdateTip(r.Context(), in.TipID, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			httputil.NotFound(w, "tip not found")
			return
		}
		s.log.Error(r.Context(), "update tip failed", err)
		httputil.InternalError(w, "failed to update tip status")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tip":     tip,
	})
}
