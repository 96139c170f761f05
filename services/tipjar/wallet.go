package tipjar

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	sdkmath "cosmossdk.io/math"
)

// =============================================================================
// Payment Rail
// =============================================================================

const (
	defaultSubmitDelay = 2 * time.Second
	defaultSuccessRate = 0.95

	// connectedAddress is the fixed address reported for the demo wallet.
	connectedAddress = "0x1234567890123456789012345678901234567890"
	mockBalance      = "1.5"
)

// maxTipAmount caps a single payment, currency-unit agnostic.
var maxTipAmount = sdkmath.LegacyNewDec(10)

// ErrTransactionFailed is the generic payment failure surfaced to the
// caller; resubmission is the only retry mechanism.
var ErrTransactionFailed = errors.New("transaction failed")

// ErrInvalidPayment reports unusable payment parameters.
var ErrInvalidPayment = errors.New("invalid payment parameters")

// PaymentReceipt is the result of a successful submission.
type PaymentReceipt struct {
	Hash    string `json:"hash"`
	Success bool   `json:"success"`
}

// PaymentSubmitter is the payment-rail capability injected into the
// service. The production implementation would sign and broadcast a
// transaction; TipJarz ships with a simulated rail.
type PaymentSubmitter interface {
	Submit(ctx context.Context, payerAddress, payeeAddress, amount string) (*PaymentReceipt, error)
	ConnectedAddress(ctx context.Context) (string, error)
	Balance(ctx context.Context, address string) (string, error)
}

// =============================================================================
// Simulated Wallet
// =============================================================================

// SimulatedWallet fakes a payment rail: a fixed settlement delay, a
// fabricated transaction hash, and a configurable success probability.
type SimulatedWallet struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedWallet creates a simulated wallet. successRate is clamped
// to [0, 1].
func NewSimulatedWallet(delay time.Duration, successRate float64) *SimulatedWallet {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	return &SimulatedWallet{
		delay:       delay,
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit simulates submitting a payment. It validates the addresses and
// amount bounds, waits the settlement delay, then either returns a
// fabricated 64-hex-digit hash or ErrTransactionFailed.
func (w *SimulatedWallet) Submit(ctx context.Context, payerAddress, payeeAddress, amount string) (*PaymentReceipt, error) {
	if !addressPattern.MatchString(payerAddress) {
		return nil, fmt.Errorf("%w: payer address", ErrInvalidPayment)
	}
	if !addressPattern.MatchString(payeeAddress) {
		return nil, fmt.Errorf("%w: payee address", ErrInvalidPayment)
	}
	d, err := parseAmount(amount)
	if err != nil || !d.IsPositive() || d.GT(maxTipAmount) {
		return nil, fmt.Errorf("%w: amount must be positive and at most %s", ErrInvalidPayment, formatAmount(maxTipAmount))
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(w.delay):
	}

	w.mu.Lock()
	roll := w.rng.Float64()
	var hashBytes [32]byte
	w.rng.Read(hashBytes[:])
	w.mu.Unlock()

	if roll >= w.successRate {
		return nil, ErrTransactionFailed
	}

	return &PaymentReceipt{
		Hash:    "0x" + hex.EncodeToString(hashBytes[:]),
		Success: true,
	}, nil
}

// ConnectedAddress reports the demo wallet's fixed address.
func (w *SimulatedWallet) ConnectedAddress(_ context.Context) (string, error) {
	return connectedAddress, nil
}

// Balance reports a fixed demo balance for any address.
func (w *SimulatedWallet) Balance(_ context.Context, _ string) (string, error) {
	return mockBalance, nil
}
