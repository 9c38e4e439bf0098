package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shepherd-study/gift-checkout/internal/email"
	"github.com/shepherd-study/gift-checkout/internal/gift"
	"github.com/shepherd-study/gift-checkout/internal/order"
)

// ─── GET /success ─────────────────────────────────────────────────────────────

// handleSuccess is Stripe's redirect target after a completed payment. It
// recovers the order, emails the purchaser a confirmation, then issues one
// coupon and one welcome email per recipient, strictly in form order, and
// finally redirects the browser to the configured destination.
//
// Fulfillment failures are invisible to the end user — they always land on
// the redirect. Every per-recipient outcome is therefore collected and
// logged, so a partial failure (purchaser charged, some recipients
// unserved) is observable in the logs rather than silently dropped.
func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		o   gift.Order
		err error
	)

	if token := query.Get("order"); token != "" {
		// Claim is take-once: a replayed success URL finds nothing and causes
		// no duplicate coupons or emails.
		o, err = s.orders.Claim(token)
		if errors.Is(err, order.ErrNotFound) {
			s.logger.Warn("fulfillment: order already claimed or expired, skipping side effects",
				"token", token,
				logField(r),
			)
			s.redirectToDestination(w, r)
			return
		}
	} else {
		// Legacy path: the order rides in the URL itself. This path is
		// replayable — nothing stops a second visit from re-running
		// fulfillment. Kept for compatibility with pre-token success URLs.
		o, err = decodeLegacyOrder(query)
	}
	if err != nil {
		// The purchaser has paid; a decode failure here needs a human.
		s.logger.Error("fulfillment: cannot recover order",
			"error", err,
			logField(r),
		)
		s.redirectToDestination(w, r)
		return
	}

	report := s.fulfill(r, o)

	s.logger.Info("fulfillment: complete",
		"purchaser", o.PurchaserEmail,
		"purchaser_email_sent", report.PurchaserEmailSent,
		"recipients", len(o.Recipients),
		"delivered", report.Delivered(),
		"failed", report.Failed(),
		logField(r),
	)

	s.redirectToDestination(w, r)
}

// fulfill performs the post-payment side effects and returns the
// per-recipient outcome. Recipients are processed sequentially in form
// order; one recipient's failure never aborts the rest.
func (s *Server) fulfill(r *http.Request, o gift.Order) gift.FulfillmentReport {
	report := gift.FulfillmentReport{
		Recipients: make([]gift.RecipientResult, 0, len(o.Recipients)),
	}

	// Purchaser confirmation goes out first, before any coupon exists.
	confirmErr := s.mailer.SendGiftConfirmation(r.Context(), email.ConfirmationParams{
		To:             o.PurchaserEmail,
		PurchaserName:  o.PurchaserName,
		RecipientNames: o.RecipientNames(),
	})
	if confirmErr != nil {
		s.logger.Error("fulfillment: purchaser confirmation failed",
			"purchaser", o.PurchaserEmail,
			"error", confirmErr,
			logField(r),
		)
	}
	report.PurchaserEmailSent = confirmErr == nil

	for _, rec := range o.Recipients {
		result := gift.RecipientResult{Email: rec.Email}

		promo, err := s.stripe.IssueCoupon(r.Context())
		if err != nil {
			result.Err = fmt.Errorf("issue coupon: %w", err)
			s.logger.Error("fulfillment: coupon issuance failed",
				"recipient", rec.Email,
				"error", err,
				logField(r),
			)
			report.Recipients = append(report.Recipients, result)
			continue
		}
		result.CouponIssued = true

		err = s.mailer.SendRecipientWelcome(r.Context(), email.WelcomeParams{
			To:              rec.Email,
			RecipientName:   rec.Name,
			PurchaserName:   o.PurchaserName,
			CouponCode:      promo.Code,
			PersonalMessage: rec.PersonalMessage,
		})
		if err != nil {
			// The coupon is already minted; log its code so support can
			// resend it by hand.
			result.Err = fmt.Errorf("send welcome email: %w", err)
			s.logger.Error("fulfillment: welcome email failed",
				"recipient", rec.Email,
				"coupon_code", promo.Code,
				"error", err,
				logField(r),
			)
			report.Recipients = append(report.Recipients, result)
			continue
		}
		result.EmailSent = true

		report.Recipients = append(report.Recipients, result)
	}

	return report
}

// redirectToDestination sends the browser to the configured post-purchase
// page, or the site root when none is configured.
func (s *Server) redirectToDestination(w http.ResponseWriter, r *http.Request) {
	dest := "/"
	if s.cfg.RedirectBaseURL != "" {
		dest = s.cfg.RedirectBaseURL + "/success"
	}
	http.Redirect(w, r, dest, http.StatusFound)
}

// decodeLegacyOrder reconstructs the order from the URL-embedded JSON
// parameters of a pre-token success URL.
func decodeLegacyOrder(query url.Values) (gift.Order, error) {
	raw := query.Get("recipientList")
	if raw == "" {
		return gift.Order{}, errors.New("missing recipientList parameter")
	}

	var recipients []gift.Recipient
	if err := json.Unmarshal([]byte(raw), &recipients); err != nil {
		return gift.Order{}, fmt.Errorf("decode recipientList: %w", err)
	}

	return gift.Order{
		PurchaserEmail: query.Get("user_email"),
		PurchaserName:  query.Get("senderName"),
		Recipients:     recipients,
	}, nil
}
