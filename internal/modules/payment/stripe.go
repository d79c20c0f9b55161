package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"spacehub/internal/domain"
)

// StripeProvider creates Stripe Checkout sessions for booking payments.
type StripeProvider struct {
	successURL string
	cancelURL  string
}

func NewStripeProvider(secretKey, successURL, cancelURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{successURL: successURL, cancelURL: cancelURL}
}

func (p *StripeProvider) CreateSession(ctx context.Context, pay *domain.Payment, description string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(pay.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(pay.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.successURL),
		CancelURL:         stripe.String(p.cancelURL),
		ClientReferenceID: stripe.String(pay.ID.String()),
	}
	params.Metadata = map[string]string{
		"tenant_id":  pay.TenantID.String(),
		"booking_id": pay.BookingID.String(),
		"payment_id": pay.ID.String(),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, sess.URL, nil
}
