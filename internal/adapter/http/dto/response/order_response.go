package response

import (
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
)

type EstimateBreakdownResponse struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Equipment float64 `json:"equipment"`
	Transport float64 `json:"transport"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
}

func fromEstimateBreakdown(b entities.EstimateBreakdown) EstimateBreakdownResponse {
	return EstimateBreakdownResponse{
		Labor:     b.Labor,
		Materials: b.Materials,
		Equipment: b.Equipment,
		Transport: b.Transport,
		Other:     b.Other,
		Total:     b.Total(),
	}
}

type OrderResponse struct {
	ID                   string                    `json:"id"`
	Number               string                    `json:"number"`
	CurrentStep          string                    `json:"current_step"`
	StepNumber           int                       `json:"step_number"`
	CoarseStatus         string                    `json:"coarse_status"`
	Version              int64                     `json:"version"`
	ClientName           string                    `json:"client_name"`
	Description          string                    `json:"description,omitempty"`
	Priority             string                    `json:"priority"`
	AssignedTechnicianID string                    `json:"assigned_technician_id,omitempty"`
	Estimate             EstimateBreakdownResponse `json:"estimate"`
	ScheduledStart       *time.Time                `json:"scheduled_start,omitempty"`
	ScheduledEnd         *time.Time                `json:"scheduled_end,omitempty"`
	CompletedAt          *time.Time                `json:"completed_at,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		Number:               o.Number,
		CurrentStep:          string(o.CurrentStep),
		StepNumber:           lifecycle.Number(o.CurrentStep),
		CoarseStatus:         string(o.CoarseStatus),
		Version:              o.Version,
		ClientName:           o.ClientName,
		Description:          o.Description,
		Priority:             string(o.Priority),
		AssignedTechnicianID: o.AssignedTechnicianID,
		Estimate:             fromEstimateBreakdown(o.Estimate),
		ScheduledStart:       o.ScheduledStart,
		ScheduledEnd:         o.ScheduledEnd,
		CompletedAt:          o.CompletedAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
