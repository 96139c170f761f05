package tipjar

import (
	"context"
	"testing"

	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

// mockStore implements Store with overridable function fields. Unset
// fields return zero values.
type mockStore struct {
	createCreator func(ctx context.Context, c *tipjarsupabase.Creator) error
	getCreator    func(ctx context.Context, creatorID string) (*tipjarsupabase.Creator, error)
	updateCreator func(ctx context.Context, creatorID string, upd *tipjarsupabase.CreatorUpdate) (*tipjarsupabase.Creator, error)

	createTip                 func(ctx context.Context, t *tipjarsupabase.Tip) error
	getTip                    func(ctx context.Context, tipID string) (*tipjarsupabase.Tip, error)
	updateTip                 func(ctx context.Context, tipID string, upd *tipjarsupabase.TipUpdate) (*tipjarsupabase.Tip, error)
	listConfirmedTips         func(ctx context.Context, creatorID string, limit int) ([]tipjarsupabase.Tip, error)
	listConfirmedTipsByTipper func(ctx context.Context, creatorID, tipperAddress string) ([]tipjarsupabase.Tip, error)

	createGatedContent func(ctx context.Context, gc *tipjarsupabase.GatedContent) error
	getGatedContent    func(ctx context.Context, contentID string) (*tipjarsupabase.GatedContent, error)
	listGatedContent   func(ctx context.Context, creatorID string) ([]tipjarsupabase.GatedContent, error)
}

func (m *mockStore) CreateCreator(ctx context.Context, c *tipjarsupabase.Creator) error {
	if m.createCreator != nil {
		return m.createCreator(ctx, c)
	}
	return nil
}

func (m *mockStore) GetCreator(ctx context.Context, creatorID string) (*tipjarsupabase.Creator, error) {
	if m.getCreator != nil {
		return m.getCreator(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockStore) UpdateCreator(ctx context.Context, creatorID string, upd *tipjarsupabase.CreatorUpdate) (*tipjarsupabase.Creator, error) {
	if m.updateCreator != nil {
		return m.updateCreator(ctx, creatorID, upd)
	}
	return nil, nil
}

func (m *mockStore) CreateTip(ctx context.Context, t *tipjarsupabase.Tip) error {
	if m.createTip != nil {
		return m.createTip(ctx, t)
	}
	return nil
}

func (m *mockStore) GetTip(ctx context.Context, tipID string) (*tipjarsupabase.Tip, error) {
	if m.getTip != nil {
		return m.getTip(ctx, tipID)
	}
	return nil, nil
}

func (m *mockStore) UpdateTip(ctx context.Context, tipID string, upd *tipjarsupabase.TipUpdate) (*tipjarsupabase.Tip, error) {
	if m.updateTip != nil {
		return m.updateTip(ctx, tipID, upd)
	}
	return nil, nil
}

func (m *mockStore) ListConfirmedTips(ctx context.Context, creatorID string, limit int) ([]tipjarsupabase.Tip, error) {
	if m.listConfirmedTips != nil {
		return m.listConfirmedTips(ctx, creatorID, limit)
	}
	return nil, nil
}

func (m *mockStore) ListConfirmedTipsByTipper(ctx context.Context, creatorID, tipperAddress string) ([]tipjarsupabase.Tip, error) {
	if m.listConfirmedTipsByTipper != nil {
		return m.listConfirmedTipsByTipper(ctx, creatorID, tipperAddress)
	}
	return nil, nil
}

func (m *mockStore) CreateGatedContent(ctx context.Context, gc *tipjarsupabase.GatedContent) error {
	if m.createGatedContent != nil {
		return m.createGatedContent(ctx, gc)
	}
	return nil
}

func (m *mockStore) GetGatedContent(ctx context.Context, contentID string) (*tipjarsupabase.GatedContent, error) {
	if m.getGatedContent != nil {
		return m.getGatedContent(ctx, contentID)
	}
	return nil, nil
}

func (m *mockStore) ListGatedContent(ctx context.Context, creatorID string) ([]tipjarsupabase.GatedContent, error) {
	if m.listGatedContent != nil {
		return m.listGatedContent(ctx, creatorID)
	}
	return nil, nil
}

var _ Store = (*mockStore)(nil)

// newTestService builds a service around the given mock store with an
// instant, always-successful wallet.
func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	svc, err := New(Config{
		DB:     store,
		Wallet: NewSimulatedWallet(0, 1.0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}
