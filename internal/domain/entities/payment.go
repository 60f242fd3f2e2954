package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a gateway charge recorded against an order's invoice.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (order_id-index): order_id
//
// ProviderPayloadRaw keeps the original provider response (JSON) for
// traceability/audit; ProviderPayload is an optional parsed representation.
type Payment struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
