package interfaces

import (
	"context"

	"cermont_os/internal/domain/entities"
)

// IAlertRepository abstracts DynamoDB persistence for alerts.
//
// CreateOpenIfAbsent must be atomic with the uniqueness check: the store
// performs a conditional write keyed on the open (order, type) pair so that
// two concurrent raises for the same pair cannot both insert. Alerts are
// never deleted; resolving re-keys the row out of the open slot so the same
// type may recur later.
type IAlertRepository interface {
	// CreateOpenIfAbsent inserts a as the open alert for (a.OrderID, a.Type).
	// When an open alert already exists it is returned unchanged with
	// created=false.
	CreateOpenIfAbsent(ctx context.Context, a entities.Alert) (alert entities.Alert, created bool, err error)

	GetOpen(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Alert, error)

	// MarkRead flips the read flag on the open alert for (orderID, t).
	// Resolved alerts keep whatever read state they carried at resolution;
	// when there is no open alert of the type, the zero Alert is returned.
	MarkRead(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error)

	Resolve(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error)
}
