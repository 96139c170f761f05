package tipjar

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// Unlock Evaluation
// =============================================================================

// The unlock check is stateless and re-evaluated on every request rather
// than persisting an unlocked flag: eligibility follows the tip history,
// so tips later marked failed revoke access. unlock_limit is advisory
// metadata and is not enforced here.

// UnlockedContent is a gated content record with the secret revealed.
// UnlockedAt is the evaluation time; it is not persisted.
type UnlockedContent struct {
	ContentID     string    `json:"content_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SecretContent string    `json:"secret_content"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// InsufficientTipsError reports an unmet unlock threshold. It carries
// machine-readable progress so callers can render how far along the
// tipper is. All values are decimal strings.
type InsufficientTipsError struct {
	Required  string
	Current   string
	Remaining string
}

func (e *InsufficientTipsError) Error() string {
	return fmt.Sprintf("insufficient tips: %s of %s required", e.Current, e.Required)
}

// EvaluateUnlock decides whether tipperAddress may view the secret of
// contentID. Eligibility holds iff the sum of the tipper's confirmed
// tips to the content's creator reaches min_tip_amount; exact equality
// unlocks.
func (s *Service) EvaluateUnlock(ctx context.Context, contentID, tipperAddress string) (*UnlockedContent, error) {
	content, err := s.db.GetGatedContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	required, err := parseAmount(content.MinTipAmount)
	if err != nil {
		return nil, fmt.Errorf("content %s has malformed threshold: %w", contentID, err)
	}

	tips, err := s.db.ListConfirmedTipsByTipper(ctx, content.CreatorID, tipperAddress)
	if err != nil {
		return nil, err
	}

	current, err := sumTipAmounts(tips)
	if err != nil {
		return nil, err
	}

	if current.LT(required) {
		return nil, &InsufficientTipsError{
			Required:  formatAmount(required),
			Current:   formatAmount(current),
			Remaining: formatAmount(required.Sub(current)),
		}
	}

	return &UnlockedContent{
		ContentID:     content.ContentID,
		Title:         content.Title,
		Description:   content.Description,
		SecretContent: content.SecretContent,
		UnlockedAt:    time.Now().UTC(),
	}, nil
}
