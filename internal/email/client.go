// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation plus the two gift templates.
package email

import "context"

// ConfirmationParams holds the data for the purchaser's post-payment
// confirmation email.
type ConfirmationParams struct {
	To             string   // purchaser email address
	PurchaserName  string   // display name used in the greeting
	RecipientNames []string // formatted into the body as a natural-language list
}

// WelcomeParams holds the data for a recipient's onboarding email.
type WelcomeParams struct {
	To              string
	RecipientName   string
	PurchaserName   string
	CouponCode      string // single-use promotion code, e.g. "SHEPHERDA1B2C3"
	PersonalMessage string // optional; quoted in the body when non-empty
}

// Sender is the interface the fulfillment handler uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendGiftConfirmation sends the purchaser their purchase confirmation.
	SendGiftConfirmation(ctx context.Context, p ConfirmationParams) error

	// SendRecipientWelcome sends one recipient their onboarding email with
	// the coupon code.
	SendRecipientWelcome(ctx context.Context, p WelcomeParams) error
}
