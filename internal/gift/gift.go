// Package gift holds the order model for the gift-checkout flow plus the
// pure functions that operate on it: pricing, recipient form parsing, and
// name-list formatting. Nothing in this package performs I/O.
package gift

// Recipient is one gift target as entered on the purchase form. Recipients
// are unique only by their position in the form — duplicate email addresses
// are permitted and each one receives its own coupon.
type Recipient struct {
	Email           string `json:"recipient_email"`
	Name            string `json:"recipient_name"`
	PersonalMessage string `json:"recipientMessage,omitempty"`
}

// Order is everything submitted at checkout time. It has no persisted
// identity of its own — it lives in the order store between the checkout
// redirect and the success callback, then is discarded.
type Order struct {
	PurchaserEmail string      `json:"user_email"`
	PurchaserName  string      `json:"senderName"`
	Recipients     []Recipient `json:"recipientList"`
}

// RecipientNames returns the recipient display names in form order, for the
// childNames URL parameter and the purchaser confirmation template.
func (o Order) RecipientNames() []string {
	names := make([]string, len(o.Recipients))
	for i, r := range o.Recipients {
		names[i] = r.Name
	}
	return names
}

// AmountCents is the order price in USD cents, derived from the recipient
// count alone.
func (o Order) AmountCents() int64 {
	return Price(len(o.Recipients))
}

// RecipientResult records the outcome of fulfilling a single recipient.
// Err holds the first failure encountered for that recipient (coupon
// issuance or email delivery); CouponIssued and EmailSent tell the two
// steps apart.
type RecipientResult struct {
	Email        string
	CouponIssued bool
	EmailSent    bool
	Err          error
}

// FulfillmentReport is the per-order outcome of the post-payment side
// effects. It exists so a partial failure is observable instead of silently
// swallowed — the end user still lands on the success redirect either way.
type FulfillmentReport struct {
	PurchaserEmailSent bool
	Recipients         []RecipientResult
}

// Failed counts recipients whose fulfillment did not fully complete.
func (f FulfillmentReport) Failed() int {
	n := 0
	for _, r := range f.Recipients {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Delivered counts recipients who received their onboarding email.
func (f FulfillmentReport) Delivered() int {
	n := 0
	for _, r := range f.Recipients {
		if r.EmailSent {
			n++
		}
	}
	return n
}
