package entities

import (
	"time"

	"cermont_os/internal/domain/lifecycle"
)

// Priority ranks how urgently a work order must be attended.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// EstimateBreakdown is the budgeted cost of an order split by category.
type EstimateBreakdown struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Equipment float64 `json:"equipment"`
	Transport float64 `json:"transport"`
	Other     float64 `json:"other"`
}

// Total sums the breakdown categories.
func (b EstimateBreakdown) Total() float64 {
	return b.Labor + b.Materials + b.Equipment + b.Transport + b.Other
}

// Order is the work-order aggregate root.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (current_step-index): current_step, updated_at
//
// CurrentStep is the single source of truth for lifecycle position;
// CoarseStatus is a cached projection recomputed on every transition and
// Version is the optimistic-concurrency token the transition executor
// compares-and-swaps on. Neither field is ever written outside
// ApplyTransition.
type Order struct {
	ID           string                 `json:"id"`
	Number       string                 `json:"number"`
	CurrentStep  lifecycle.Step         `json:"current_step"`
	CoarseStatus lifecycle.CoarseStatus `json:"coarse_status"`
	Version      int64                  `json:"version"`

	ClientName           string            `json:"client_name"`
	Description          string            `json:"description"`
	Priority             Priority          `json:"priority"`
	AssignedTechnicianID string            `json:"assigned_technician_id,omitempty"`
	Estimate             EstimateBreakdown `json:"estimate"`

	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
