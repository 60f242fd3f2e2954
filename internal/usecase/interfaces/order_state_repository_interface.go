package interfaces

import (
	"context"
	"errors"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
)

// ErrVersionConflict is returned by ApplyTransition when the order's version
// (or step) changed between the caller's read and the write. The caller may
// re-read and retry.
var ErrVersionConflict = errors.New("order version conflict")

// TransitionWrite is the atomic unit ApplyTransition persists: the order's
// new lifecycle position plus exactly one history ledger record. Both are
// written in a single storage transaction or not at all.
type TransitionWrite struct {
	OrderID         string
	ExpectedVersion int64
	FromStep        lifecycle.Step
	ToStep          lifecycle.Step
	CoarseStatus    lifecycle.CoarseStatus
	CompletedAt     *time.Time // set when the destination closes the order
	Record          entities.TransitionRecord
}

// IOrderStateRepository abstracts DynamoDB persistence for orders and their
// append-only transition ledger.
//
// Conventions follow the rest of the stores: a zero-value entity with an
// empty ID means "not found"; concurrency conflicts surface as
// ErrVersionConflict.
type IOrderStateRepository interface {
	// NextNumber atomically increments and returns the order sequence.
	NextNumber(ctx context.Context) (int64, error)

	// Create persists a new order together with its creation ledger record.
	Create(ctx context.Context, o entities.Order, initial entities.TransitionRecord) (entities.Order, error)

	GetByID(ctx context.Context, id string) (entities.Order, error)

	// ApplyTransition performs the compare-and-swap write described by w.
	ApplyTransition(ctx context.Context, w TransitionWrite) (entities.Order, error)

	// ListHistory returns the order's ledger, oldest first. No update or
	// delete operation exists for ledger records.
	ListHistory(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)

	// ListByStepOlderThan returns orders sitting in step since before cutoff,
	// used by the sweep jobs.
	ListByStepOlderThan(ctx context.Context, step lifecycle.Step, cutoff time.Time) ([]entities.Order, error)
}
