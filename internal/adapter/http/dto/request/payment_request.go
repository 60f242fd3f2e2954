package request

import "encoding/json"

// PaymentCreateRequest is the payload for POST /orders/:id/payments.
//
// `provider_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas. The charged amount is pinned server-side to the order's
// estimate regardless of what the payload says.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
	ActorID         string          `json:"actor_id"`
}
