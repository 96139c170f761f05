package tipjar

import (
	"errors"
	"net/http"

	"github.com/tipjarz/tipjarz/internal/httputil"
)

// handleWalletTip submits a payment through the configured rail. The
// resulting hash is what the client records on the tip afterwards.
func (s *Service) handleWalletTip(w http.ResponseWriter, r *http.Request) {
	var in SubmitTipInput
	if !httputil.DecodeJSON(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httputil.BadRequestDetails(w, "invalid input data", verr.Fields)
		return
	}

	receipt, err := s.wallet.Submit(r.Context(), in.PayerAddress, in.PayeeAddress, in.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidPayment) {
			httputil.BadRequest(w, err.Error())
			return
		}
		// Generic message; the client may resubmit.
		httputil.WriteError(w, http.StatusBadGateway, "transaction failed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"hash":    receipt.Hash,
	})
}

// handleWalletAddress reports the connected wallet address and balance.
func (s *Service) handleWalletAddress(w http.ResponseWriter, r *http.Request) {
	address, err := s.wallet.ConnectedAddress(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "wallet address lookup failed", err)
		httputil.InternalError(w, "failed to get wallet address")
		return
	}

	balance, err := s.wallet.Balance(r.Context(), address)
	if err != nil {
		s.log.Error(r.Context(), "wallet balance lookup failed", err)
		httputil.InternalError(w, "failed to get wallet balance")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"address": address,
		"balance": balance,
	})
}
