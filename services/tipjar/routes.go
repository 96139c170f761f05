package tipjar

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tipjarz/tipjarz/internal/httputil"
)

// registerRoutes wires the REST surface.
func (s *Service) registerRoutes() {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/creators", s.handleCreateCreator).Methods(http.MethodPost)
	r.HandleFunc("/creators", s.handleGetCreator).Methods(http.MethodGet)
	r.HandleFunc("/creators", s.handleUpdateCreator).Methods(http.MethodPut)

	r.HandleFunc("/tips", s.handleCreateTip).Methods(http.MethodPost)
	r.HandleFunc("/tips", s.handleListTips).Methods(http.MethodGet)
	r.HandleFunc("/tips", s.handleUpdateTip).Methods(http.MethodPut)

	r.HandleFunc("/gated-content", s.handleCreateGatedContent).Methods(http.MethodPost)
	r.HandleFunc("/gated-content", s.handleListGatedContent).Methods(http.MethodGet)
	r.HandleFunc("/gated-content/unlock", s.handleUnlockContent).Methods(http.MethodPost)

	r.HandleFunc("/wallet/tip", s.handleWalletTip).Methods(http.MethodPost)
	r.HandleFunc("/wallet/address", s.handleWalletAddress).Methods(http.MethodGet)

	s.router = r
}

// handleHealth reports liveness.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": ServiceID,
		"version": Version,
	})
}
