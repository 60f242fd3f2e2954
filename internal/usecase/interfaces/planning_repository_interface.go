package interfaces

import (
	"context"

	"cermont_os/internal/domain/entities"
)

// IPlanningRepository is the narrow contract the trigger engine needs from
// the planning module: provision an empty draft once, idempotently. The
// check-then-create runs under the store's conditional write, so a second
// trigger firing for the same order cannot create a duplicate.
type IPlanningRepository interface {
	CreateIfAbsent(ctx context.Context, orderID string) (planning entities.Planning, created bool, err error)
	GetByOrder(ctx context.Context, orderID string) (entities.Planning, error)
}
