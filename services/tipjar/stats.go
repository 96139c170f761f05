package tipjar

import (
	"context"
)

// defaultCurrency is reported for creators with no confirmed tips yet.
const defaultCurrency = "ETH"

// CreatorStats aggregates a creator's confirmed tips.
type CreatorStats struct {
	TotalTips   int    `json:"totalTips"`
	TotalAmount string `json:"totalAmount"`
	Currency    string `json:"currency"`
}

// CreatorStats counts and sums a creator's confirmed tips. Pending and
// failed tips are excluded. Zero tips yields {0, "0", "ETH"}.
func (s *Service) CreatorStats(ctx context.Context, creatorID string) (*CreatorStats, error) {
	tips, err := s.db.ListConfirmedTips(ctx, creatorID, 0)
	if err != nil {
		return nil, err
	}

	total, err := sumTipAmounts(tips)
	if err != nil {
		return nil, err
	}

	currency := defaultCurrency
	if len(tips) > 0 {
		currency = tips[0].Currency
	}

	return &CreatorStats{
		TotalTips:   len(tips),
		TotalAmount: formatAmount(total),
		Currency:    currency,
	}, nil
}
