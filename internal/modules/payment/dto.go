package payment

import (
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CreatePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

// CompletePaymentRequest confirms a provider-side payment by transaction id.
type CompletePaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	Provider      string     `json:"provider,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CheckoutResponse struct {
	Payment     PaymentResponse `json:"payment"`
	CheckoutURL string          `json:"checkout_url,omitempty"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		Provider:      p.Provider,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}
