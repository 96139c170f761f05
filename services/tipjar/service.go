// Package tipjar implements the TipJarz creator tipping service: creator
// profiles, tips with a settlement lifecycle, and tip-gated content.
package tipjar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tipjarz/tipjarz/internal/logging"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

const (
	ServiceID   = "tipjar"
	ServiceName = "TipJarz Service"
	Version     = "1.0.0"
)

// Store captures the persistence surface needed by the tipjar service.
type Store interface {
	CreateCreator(ctx context.Context, c *tipjarsupabase.Creator) error
	GetCreator(ctx context.Context, creatorID string) (*tipjarsupabase.Creator, error)
	UpdateCreator(ctx context.Context, creatorID string, upd *tipjarsupabase.CreatorUpdate) (*tipjarsupabase.Creator, error)

	CreateTip(ctx context.Context, t *tipjarsupabase.Tip) error
	GetTip(ctx context.Context, tipID string) (*tipjarsupabase.Tip, error)
	UpdateTip(ctx context.Context, tipID string, upd *tipjarsupabase.TipUpdate) (*tipjarsupabase.Tip, error)
	ListConfirmedTips(ctx context.Context, creatorID string, limit int) ([]tipjarsupabase.Tip, error)
	ListConfirmedTipsByTipper(ctx context.Context, creatorID, tipperAddress string) ([]tipjarsupabase.Tip, error)

	CreateGatedContent(ctx context.Context, gc *tipjarsupabase.GatedContent) error
	GetGatedContent(ctx context.Context, contentID string) (*tipjarsupabase.GatedContent, error)
	ListGatedContent(ctx context.Context, creatorID string) ([]tipjarsupabase.GatedContent, error)
}

// Ensure the Supabase repository satisfies the service's store contract.
var _ Store = (*tipjarsupabase.Repository)(nil)

// Config configures the tipjar service.
type Config struct {
	DB     Store
	Wallet PaymentSubmitter // optional; defaults to the simulated wallet
	Logger *logging.Logger  // optional
}

// Service implements the TipJarz service.
type Service struct {
	db     Store
	wallet PaymentSubmitter
	log    *logging.Logger
	router *mux.Router
}

// New creates a new tipjar service.
func New(cfg Config) (*Service, error) {
	if cfg.DB == nil {
		return nil, fmt.Errorf("tipjar service requires a store")
	}

	wallet := cfg.Wallet
	if wallet == nil {
		wallet = NewSimulatedWallet(defaultSubmitDelay, defaultSuccessRate)
	}

	log := cfg.Logger
	if log == nil {
		log = logging.New(ServiceID, "info")
	}

	s := &Service{
		db:     cfg.DB,
		wallet: wallet,
		log:    log,
	}
	s.registerRoutes()

	return s, nil
}

// Router returns the service's HTTP router.
func (s *Service) Router() *mux.Router {
	return s.router
}

// generateID produces identifiers like tip_1756700000000_a1b2c3d4,
// matching the stored id format: prefix, millisecond timestamp, random
// suffix.
func generateID(prefix string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
