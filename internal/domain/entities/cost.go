package entities

import "time"

// CostEntry is one recorded actual cost against an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: id
type CostEntry struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	RecordedBy  string    `json:"recorded_by,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// CostComparison is the derived estimated-vs-actual record for an order.
// One row per order, fully recomputed and upserted whenever actual costs
// change; never incrementally patched.
//
// Storage model (DynamoDB):
//   - PK: order_id
type CostComparison struct {
	OrderID            string            `json:"order_id"`
	Estimated          EstimateBreakdown `json:"estimated"`
	TotalEstimated     float64           `json:"total_estimated"`
	TotalActual        float64           `json:"total_actual"`
	VariancePercentage float64           `json:"variance_percentage"`
	RealizedMargin     float64           `json:"realized_margin"`
	ComputedAt         time.Time         `json:"computed_at"`
}
