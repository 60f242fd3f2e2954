package entities

import (
	"time"

	"cermont_os/internal/domain/lifecycle"
)

// OrderStateChangedEvent is the single domain event the lifecycle core
// publishes. Delivery is fire-and-forget; subscribers (notifications,
// analytics) must tolerate loss.
type OrderStateChangedEvent struct {
	OrderID   string         `json:"order_id"`
	FromStep  lifecycle.Step `json:"from_step,omitempty"`
	ToStep    lifecycle.Step `json:"to_step"`
	ActorID   string         `json:"actor_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
