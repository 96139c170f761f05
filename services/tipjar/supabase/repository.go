package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/tipjarz/tipjarz/internal/database"
)

// =============================================================================
// Repository Interface
// =============================================================================

// RepositoryInterface defines TipJarz-specific data access methods.
// This interface allows for easy mocking in tests.
type RepositoryInterface interface {
	// Creator operations
	CreateCreator(ctx context.Context, c *Creator) error
	GetCreator(ctx context.Context, creatorID string) (*Creator, error)
	UpdateCreator(ctx context.Context, creatorID string, upd *CreatorUpdate) (*Creator, error)

	// Tip operations
	CreateTip(ctx context.Context, t *Tip) error
	GetTip(ctx context.Context, tipID string) (*Tip, error)
	UpdateTip(ctx context.Context, tipID string, upd *TipUpdate) (*Tip, error)
	ListConfirmedTips(ctx context.Context, creatorID string, limit int) ([]Tip, error)
	ListConfirmedTipsByTipper(ctx context.Context, creatorID, tipperAddress string) ([]Tip, error)

	// Gated content operations
	CreateGatedContent(ctx context.Context, gc *GatedContent) error
	GetGatedContent(ctx context.Context, contentID string) (*GatedContent, error)
	ListGatedContent(ctx context.Context, creatorID string) ([]GatedContent, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

// =============================================================================
// Repository Implementation
// =============================================================================

// Repository provides TipJarz-specific data access methods.
type Repository struct {
	base *database.Repository
}

// NewRepository creates a new TipJarz repository.
func NewRepository(base *database.Repository) *Repository {
	return &Repository{base: base}
}

// =============================================================================
// Creator Operations
// =============================================================================

// CreateCreator inserts a new creator profile.
func (r *Repository) CreateCreator(ctx context.Context, c *Creator) error {
	if c == nil {
		return fmt.Errorf("%w: creator cannot be nil", database.ErrInvalidInput)
	}
	if c.CreatorID == "" {
		return fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	return database.GenericCreate(r.base, ctx, tableCreators, c, func(rows []Creator) {
		if len(rows) > 0 {
			*c = rows[0]
		}
	})
}

// GetCreator fetches a creator profile by ID.
func (r *Repository) GetCreator(ctx context.Context, creatorID string) (*Creator, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	c, err := database.GenericGetByField[Creator](r.base, ctx, tableCreators, "creator_id", creatorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: creator %s", database.ErrNotFound, creatorID)
	}
	return c, nil
}

// UpdateCreator applies a partial profile update. The updated_at column
// is always stamped.
func (r *Repository) UpdateCreator(ctx context.Context, creatorID string, upd *CreatorUpdate) (*Creator, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	if upd == nil {
		return nil, fmt.Errorf("%w: update cannot be nil", database.ErrInvalidInput)
	}
	upd.UpdatedAt = time.Now().UTC()

	rows, err := database.GenericUpdate[Creator](r.base, ctx, tableCreators, "creator_id", creatorID, upd)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: creator %s", database.ErrNotFound, creatorID)
	}
	return &rows[0], nil
}

// =============================================================================
// Tip Operations
// =============================================================================

// CreateTip inserts a new tip row.
func (r *Repository) CreateTip(ctx context.Context, t *Tip) error {
	if t == nil {
		return fmt.Errorf("%w: tip cannot be nil", database.ErrInvalidInput)
	}
	if t.TipID == "" {
		return fmt.Errorf("%w: tip_id cannot be empty", database.ErrInvalidInput)
	}
	if t.CreatorID == "" {
		return fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	return database.GenericCreate(r.base, ctx, tableTips, t, func(rows []Tip) {
		if len(rows) > 0 {
			*t = rows[0]
		}
	})
}

// GetTip fetches a tip by ID.
func (r *Repository) GetTip(ctx context.Context, tipID string) (*Tip, error) {
	if tipID == "" {
		return nil, fmt.Errorf("%w: tip_id cannot be empty", database.ErrInvalidInput)
	}
	t, err := database.GenericGetByField[Tip](r.base, ctx, tableTips, "tip_id", tipID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: tip %s", database.ErrNotFound, tipID)
	}
	return t, nil
}

// UpdateTip updates a tip's status and optional transaction hash.
func (r *Repository) UpdateTip(ctx context.Context, tipID string, upd *TipUpdate) (*Tip, error) {
	if tipID == "" {
		return nil, fmt.Errorf("%w: tip_id cannot be empty", database.ErrInvalidInput)
	}
	if upd == nil {
		return nil, fmt.Errorf("%w: update cannot be nil", database.ErrInvalidInput)
	}
	if !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", database.ErrInvalidInput, upd.Status)
	}

	rows, err := database.GenericUpdate[Tip](r.base, ctx, tableTips, "tip_id", tipID, upd)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: tip %s", database.ErrNotFound, tipID)
	}
	return &rows[0], nil
}

// ListConfirmedTips lists a creator's confirmed tips, newest first.
func (r *Repository) ListConfirmedTips(ctx context.Context, creatorID string, limit int) ([]Tip, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	query := database.NewQuery().
		Eq("creator_id", creatorID).
		Eq("status", string(TipStatusConfirmed)).
		OrderDesc("timestamp").
		Limit(limit).
		Build()
	return database.GenericListWithQuery[Tip](r.base, ctx, tableTips, query)
}

// ListConfirmedTipsByTipper lists one tipper's confirmed tips for a
// creator, the input to the unlock evaluation.
func (r *Repository) ListConfirmedTipsByTipper(ctx context.Context, creatorID, tipperAddress string) ([]Tip, error) {
	if creatorID == "" || tipperAddress == "" {
		return nil, fmt.Errorf("%w: creator_id and tipper_address cannot be empty", database.ErrInvalidInput)
	}
	query := database.NewQuery().
		Eq("creator_id", creatorID).
		Eq("tipper_address", tipperAddress).
		Eq("status", string(TipStatusConfirmed)).
		Build()
	return database.GenericListWithQuery[Tip](r.base, ctx, tableTips, query)
}

// =============================================================================
// Gated Content Operations
// =============================================================================

// CreateGatedContent inserts a new gated content row.
func (r *Repository) CreateGatedContent(ctx context.Context, gc *GatedContent) error {
	if gc == nil {
		return fmt.Errorf("%w: gated content cannot be nil", database.ErrInvalidInput)
	}
	if gc.ContentID == "" {
		return fmt.Errorf("%w: content_id cannot be empty", database.ErrInvalidInput)
	}
	if gc.CreatorID == "" {
		return fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	return database.GenericCreate(r.base, ctx, tableGatedContent, gc, func(rows []GatedContent) {
		if len(rows) > 0 {
			*gc = rows[0]
		}
	})
}

// GetGatedContent fetches a gated content record by ID, including the
// secret. Callers decide whether the secret may be revealed.
func (r *Repository) GetGatedContent(ctx context.Context, contentID string) (*GatedContent, error) {
	if contentID == "" {
		return nil, fmt.Errorf("%w: content_id cannot be empty", database.ErrInvalidInput)
	}
	gc, err := database.GenericGetByField[GatedContent](r.base, ctx, tableGatedContent, "content_id", contentID)
	if err != nil {
		return nil, err
	}
	if gc == nil {
		return nil, fmt.Errorf("%w: content %s", database.ErrNotFound, contentID)
	}
	return gc, nil
}

// ListGatedContent lists a creator's gated content, newest first.
func (r *Repository) ListGatedContent(ctx context.Context, creatorID string) ([]GatedContent, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator_id cannot be empty", database.ErrInvalidInput)
	}
	query := database.NewQuery().
		Eq("creator_id", creatorID).
		OrderDesc("created_at").
		Build()
	return database.GenericListWithQuery[GatedContent](r.base, ctx, tableGatedContent, query)
}
