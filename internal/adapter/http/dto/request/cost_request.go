package request

// CostEntryRequest is the payload for POST /orders/:id/costs.
type CostEntryRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	RecordedBy  string  `json:"recorded_by"`
}
