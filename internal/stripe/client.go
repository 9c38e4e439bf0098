// Package stripe defines the interface for the payment-processor calls the
// checkout and fulfillment handlers make, and provides the promotion-code
// generator. The concrete implementation wraps the official stripe-go SDK;
// tests inject a stub.
package stripe

import (
	"context"
	"crypto/rand"
	"fmt"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// CheckoutParams holds the inputs for creating a hosted Checkout Session.
// A one-off price for ProductName at AmountCents is created first and bound
// to the session.
type CheckoutParams struct {
	AmountCents int64
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the subset of a Stripe Checkout Session that callers
// need: the hosted payment page URL to redirect the browser to.
type CheckoutSession struct {
	ID  string
	URL string
}

// PromotionCode is the subset of a Stripe promotion code that callers need.
// Code is the human-enterable string that goes into the recipient email.
type PromotionCode struct {
	ID       string
	CouponID string
	Code     string
}

// ─── CLIENT INTERFACE ─────────────────────────────────────────────────────────

// Client is the interface the api package uses for all Stripe calls.
type Client interface {
	// CreateCheckoutSession registers a one-off price and creates a Checkout
	// Session for it, with promotion-code entry enabled.
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error)

	// IssueCoupon creates a single-redemption 100%-off coupon and registers a
	// freshly generated code as its redeemable promotion code. Each call mints
	// a new coupon; codes are never reused.
	IssueCoupon(ctx context.Context) (PromotionCode, error)
}

// ─── CODE GENERATION ─────────────────────────────────────────────────────────

// couponCodePrefix brands every generated promotion code.
const couponCodePrefix = "SHEPHERD"

// NewCouponCode returns a code of the form SHEPHERD followed by the
// uppercase hex of 3 cryptographically random bytes, e.g. "SHEPHERDA1B2C3".
func NewCouponCode() (string, error) {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("stripe: generate coupon code: %w", err)
	}
	return fmt.Sprintf("%s%X", couponCodePrefix, b[:]), nil
}
