package response

import (
	"time"

	"cermont_os/internal/domain/entities"
)

type CostEntryResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	RecordedBy  string    `json:"recorded_by,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func FromCostEntry(e entities.CostEntry) CostEntryResponse {
	return CostEntryResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		RecordedBy:  e.RecordedBy,
		RecordedAt:  e.RecordedAt,
	}
}

type CostComparisonResponse struct {
	OrderID            string                    `json:"order_id"`
	Estimated          EstimateBreakdownResponse `json:"estimated"`
	TotalEstimated     float64                   `json:"total_estimated"`
	TotalActual        float64                   `json:"total_actual"`
	VariancePercentage float64                   `json:"variance_percentage"`
	RealizedMargin     float64                   `json:"realized_margin"`
	ComputedAt         time.Time                 `json:"computed_at"`
}

func FromCostComparison(c entities.CostComparison) CostComparisonResponse {
	return CostComparisonResponse{
		OrderID:            c.OrderID,
		Estimated:          fromEstimateBreakdown(c.Estimated),
		TotalEstimated:     c.TotalEstimated,
		TotalActual:        c.TotalActual,
		VariancePercentage: c.VariancePercentage,
		RealizedMargin:     c.RealizedMargin,
		ComputedAt:         c.ComputedAt,
	}
}

type CostEntryCreatedResponse struct {
	Entry      CostEntryResponse      `json:"entry"`
	Comparison CostComparisonResponse `json:"comparison"`
}
