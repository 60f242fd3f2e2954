package entities

import "time"

// PlanningStatus is the lifecycle of a planning record. The lifecycle core
// only ever creates drafts; the planning module owns the rest.
type PlanningStatus string

const (
	PlanningStatusDraft PlanningStatus = "draft"
)

// Planning is the dependent record auto-provisioned when a proposal is
// approved. The core does not own planning's schema beyond this stub.
//
// Storage model (DynamoDB):
//   - PK: order_id (one planning record per order)
type Planning struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"order_id"`
	Status    PlanningStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
