package request

import (
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
)

type EstimateBreakdownRequest struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Equipment float64 `json:"equipment"`
	Transport float64 `json:"transport"`
	Other     float64 `json:"other"`
}

func (r EstimateBreakdownRequest) ToEntity() entities.EstimateBreakdown {
	return entities.EstimateBreakdown{
		Labor:     r.Labor,
		Materials: r.Materials,
		Equipment: r.Equipment,
		Transport: r.Transport,
		Other:     r.Other,
	}
}

// CreateOrderRequest is the payload for POST /orders. The lifecycle position
// is never part of it; new orders always start at the first step.
type CreateOrderRequest struct {
	ClientName           string                   `json:"client_name" binding:"required"`
	Description          string                   `json:"description"`
	Priority             string                   `json:"priority"`
	AssignedTechnicianID string                   `json:"assigned_technician_id"`
	Estimate             EstimateBreakdownRequest `json:"estimate"`
	ScheduledStart       *time.Time               `json:"scheduled_start"`
	ScheduledEnd         *time.Time               `json:"scheduled_end"`
	ActorID              string                   `json:"actor_id"`
}

func (r CreateOrderRequest) ResolveClientName() string {
	return strings.TrimSpace(r.ClientName)
}
