package resilience

import (
	"context"
	"time"
)

// TimeoutConfig defines the timeout hierarchy around a payment attempt.
// Each inner layer must complete before its parent times out, and gateway
// calls get a single short attempt: a payment request is never retried
// automatically because the first attempt may have charged the card.
type TimeoutConfig struct {
	// Host-facing layer: one checkout or booking submission
	Checkout time.Duration

	// Service layer: one orchestrated payment attempt (must be < Checkout)
	Payment time.Duration

	// Gateway call: the single HTTP request to eWAY (must be < Payment)
	Gateway time.Duration
}

// DefaultTimeoutConfig returns production timeout values
func DefaultTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		Checkout: 60 * time.Second,
		Payment:  45 * time.Second,
		Gateway:  30 * time.Second,
	}
}

// TestTimeoutConfig returns shorter timeouts for testing
func TestTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		Checkout: 5 * time.Second,
		Payment:  3 * time.Second,
		Gateway:  2 * time.Second,
	}
}

// CheckoutContext creates a context bounding one checkout submission
func (tc *TimeoutConfig) CheckoutContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, tc.Checkout)
}

// PaymentContext creates a context bounding one payment attempt
func (tc *TimeoutConfig) PaymentContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, tc.Payment)
}

// GatewayContext creates a context bounding the gateway HTTP request
func (tc *TimeoutConfig) GatewayContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, tc.Gateway)
}
