package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shepherd-study/gift-checkout/internal/gift"
	stripeinternal "github.com/shepherd-study/gift-checkout/internal/stripe"
)

// productName is the line item shown on the Stripe-hosted payment page.
const productName = "Gift Shepherd Yearly"

// checkoutErrBody is the static 500 body for processor failures during
// checkout creation. Nothing has been charged or stored at that point, so
// there is no cleanup — the purchaser just retries the form.
const checkoutErrBody = "An error occurred while creating the checkout session."

// ─── POST / ───────────────────────────────────────────────────────────────────

// handleCheckout turns a purchase-form submission into a hosted Stripe
// Checkout Session and redirects the browser to it.
//
// The order is stored server-side under a single-use token before Stripe is
// called; the token rides in the success URL so fulfillment can claim the
// order exactly once. The legacy URL-embedded JSON parameters are still
// appended for compatibility with callers that link to /success directly.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB max
	if err := r.ParseForm(); err != nil {
		respondText(w, http.StatusBadRequest, "invalid form body")
		return
	}

	o := gift.Order{
		PurchaserEmail: r.PostForm.Get("user_email"),
		PurchaserName:  r.PostForm.Get("senderName"),
		Recipients:     gift.ParseRecipients(r.PostForm),
	}

	// ── Validation ────────────────────────────────────────────────────────────
	// Zero recipients would price to $0 and create a free checkout — rejected
	// outright rather than letting a likely-broken form submission through.
	switch {
	case o.PurchaserEmail == "":
		respondText(w, http.StatusBadRequest, "user_email is required")
		return
	case o.PurchaserName == "":
		respondText(w, http.StatusBadRequest, "senderName is required")
		return
	case len(o.Recipients) == 0:
		respondText(w, http.StatusBadRequest, "at least one recipient is required")
		return
	}
	for i, rec := range o.Recipients {
		if rec.Email == "" {
			respondText(w, http.StatusBadRequest, fmt.Sprintf("recipient %d is missing an email address", i+1))
			return
		}
	}

	// ── Store the order, build the redirect URLs ──────────────────────────────
	token := s.orders.Create(o)

	successURL, err := s.successURL(o, token)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("build success url: %w", err), checkoutErrBody)
		return
	}

	// ── Create the Checkout Session ───────────────────────────────────────────
	sess, err := s.stripe.CreateCheckoutSession(r.Context(), stripeinternal.CheckoutParams{
		AmountCents: o.AmountCents(),
		ProductName: productName,
		SuccessURL:  successURL,
		CancelURL:   s.cfg.BaseURL + "/",
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create checkout session: %w", err), checkoutErrBody)
		return
	}

	s.logger.Info("checkout: session created",
		"session_id", sess.ID,
		"recipients", len(o.Recipients),
		"amount_cents", o.AmountCents(),
		logField(r),
	)

	http.Redirect(w, r, sess.URL, http.StatusFound)
}

// successURL builds the /success callback URL carrying the order token plus
// the legacy percent-encoded JSON parameters.
func (s *Server) successURL(o gift.Order, token string) (string, error) {
	names, err := json.Marshal(o.RecipientNames())
	if err != nil {
		return "", fmt.Errorf("marshal recipient names: %w", err)
	}
	recipients, err := json.Marshal(o.Recipients)
	if err != nil {
		return "", fmt.Errorf("marshal recipients: %w", err)
	}

	q := url.Values{}
	q.Set("order", token)
	q.Set("user_email", o.PurchaserEmail)
	q.Set("senderName", o.PurchaserName)
	q.Set("childNames", string(names))
	q.Set("recipientList", string(recipients))

	return s.cfg.BaseURL + "/success?" + q.Encode(), nil
}
