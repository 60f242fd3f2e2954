package entities

import (
	"time"

	"cermont_os/internal/domain/lifecycle"
)

// TransitionRecord is one entry of the append-only history ledger. Records
// are immutable once written; for a given order the ledger ordered by Seq
// reconstructs CurrentStep as the last ToStep.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: seq (numeric, the order version the transition produced)
type TransitionRecord struct {
	ID       string            `json:"id"`
	OrderID  string            `json:"order_id"`
	Seq      int64             `json:"seq"`
	FromStep lifecycle.Step    `json:"from_step,omitempty"` // empty only on the creation record
	ToStep   lifecycle.Step    `json:"to_step"`
	ActorID  string            `json:"actor_id,omitempty"` // empty = system-triggered
	Note     string            `json:"note,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	At       time.Time         `json:"at"`
}
