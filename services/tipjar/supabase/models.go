// Package supabase provides TipJarz-specific database operations.
package supabase

import (
	"time"
)

// Table names
const (
	tableCreators     = "creators"
	tableTips         = "tips"
	tableGatedContent = "gated_content"
)

// =============================================================================
// Tip Status Constants
// =============================================================================

// TipStatus represents the settlement state of a tip.
type TipStatus string

const (
	TipStatusPending   TipStatus = "pending"
	TipStatusConfirmed TipStatus = "confirmed"
	TipStatusFailed    TipStatus = "failed"
)

// Valid reports whether s is a known status.
func (s TipStatus) Valid() bool {
	switch s {
	case TipStatusPending, TipStatusConfirmed, TipStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s is a final state. Only confirmed tips count
// toward unlock thresholds and creator stats.
func (s TipStatus) Terminal() bool {
	return s == TipStatusConfirmed || s == TipStatusFailed
}

// =============================================================================
// Creator Model
// =============================================================================

// Creator is a content producer with a profile and receiving wallet.
type Creator struct {
	CreatorID     string    `json:"creator_id"`
	WalletAddress string    `json:"wallet_address"`
	Bio           string    `json:"bio"`
	Content       string    `json:"content"`
	Name          string    `json:"name,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// CreatorUpdate is a partial update for a creator profile. Nil fields are
// left untouched by the store.
type CreatorUpdate struct {
	Bio       *string   `json:"bio,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =============================================================================
// Tip Model
// =============================================================================

// Tip is a recorded payment from a tipper to a creator. Amounts are
// decimal strings on the wire and in the store, never floats.
type Tip struct {
	TipID             string    `json:"tip_id"`
	CreatorID         string    `json:"creator_id"`
	TipperAddress     string    `json:"tipper_address"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Message           string    `json:"message,omitempty"`
	UnlockedContentID string    `json:"unlocked_content_id,omitempty"`
	TransactionHash   string    `json:"transaction_hash,omitempty"`
	Status            TipStatus `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

// TipUpdate is a partial update for a tip's lifecycle state.
type TipUpdate struct {
	Status          TipStatus `json:"status"`
	TransactionHash *string   `json:"transaction_hash,omitempty"`
}

// =============================================================================
// Gated Content Model
// =============================================================================

// GatedContent is content revealed only once a tipper's cumulative
// confirmed tips to the creator meet min_tip_amount.
type GatedContent struct {
	ContentID     string    `json:"content_id"`
	CreatorID     string    `json:"creator_id"`
	SecretContent string    `json:"secret_content"`
	MinTipAmount  string    `json:"min_tip_amount"`
	UnlockLimit   *int      `json:"unlock_limit,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
