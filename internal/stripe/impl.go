package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/coupon"
	"github.com/stripe/stripe-go/v82/price"
	"github.com/stripe/stripe-go/v82/promotioncode"
)

// stripeClient is the concrete implementation of Client backed by the
// official stripe-go SDK. Construct it with NewClient.
type stripeClient struct {
	secretKey string
}

// NewClient returns a Client backed by the Stripe SDK.
// secretKey is your STRIPE_SECRET_KEY env var.
func NewClient(secretKey string) Client {
	return &stripeClient{secretKey: secretKey}
}

// CreateCheckoutSession creates a one-off USD price for the product, then a
// hosted Checkout Session bound to it. Promotion-code entry is enabled so a
// previously gifted recipient can redeem their own code at this checkout.
func (c *stripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error) {
	stripe.Key = c.secretKey

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		UnitAmount: stripe.Int64(p.AmountCents),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(p.ProductName),
		},
	}
	// Propagate context deadline to the Stripe HTTP call.
	priceParams.Context = ctx

	pr, err := price.New(priceParams)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("stripe: create price: %w", err)
	}

	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(pr.ID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
	}
	sessionParams.Context = ctx

	sess, err := session.New(sessionParams)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	return CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// IssueCoupon mints a duration-once, 100%-off, single-redemption coupon and
// registers a generated SHEPHERD code as its promotion code.
//
// There is no idempotency key on either call: a retry after a partial
// failure creates a fresh coupon and may orphan the earlier one in Stripe.
// Orphans are inert — max_redemptions=1 and no published code means nobody
// can redeem them.
func (c *stripeClient) IssueCoupon(ctx context.Context) (PromotionCode, error) {
	stripe.Key = c.secretKey

	couponParams := &stripe.CouponParams{
		Duration:       stripe.String(string(stripe.CouponDurationOnce)),
		PercentOff:     stripe.Float64(100),
		MaxRedemptions: stripe.Int64(1),
	}
	couponParams.Context = ctx

	cp, err := coupon.New(couponParams)
	if err != nil {
		return PromotionCode{}, fmt.Errorf("stripe: create coupon: %w", err)
	}

	code, err := NewCouponCode()
	if err != nil {
		return PromotionCode{}, err
	}

	promoParams := &stripe.PromotionCodeParams{
		Coupon: stripe.String(cp.ID),
		Code:   stripe.String(code),
	}
	promoParams.Context = ctx

	promo, err := promotioncode.New(promoParams)
	if err != nil {
		return PromotionCode{}, fmt.Errorf("stripe: create promotion code: %w", err)
	}

	return PromotionCode{
		ID:       promo.ID,
		CouponID: cp.ID,
		Code:     promo.Code,
	}, nil
}
