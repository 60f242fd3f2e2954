package response

import (
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase"
)

type PaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentOutcomeResponse struct {
	Payment    PaymentResponse    `json:"payment"`
	Transition TransitionResponse `json:"transition"`
}

func FromPaymentOutcome(o usecase.PaymentOutcome) PaymentOutcomeResponse {
	return PaymentOutcomeResponse{
		Payment:    FromPayment(o.Payment),
		Transition: FromTransitionResult(o.Transition),
	}
}
