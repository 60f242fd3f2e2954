package interfaces

import (
	"context"

	"cermont_os/internal/domain/entities"
)

// ICostEntryRepository abstracts DynamoDB persistence for recorded actual
// costs.
type ICostEntryRepository interface {
	Add(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.CostEntry, error)
}

// ICostComparisonRepository abstracts the single estimated-vs-actual row kept
// per order. Upsert replaces the whole row; partial updates do not exist.
type ICostComparisonRepository interface {
	Upsert(ctx context.Context, c entities.CostComparison) (entities.CostComparison, error)
	GetByOrder(ctx context.Context, orderID string) (entities.CostComparison, error)
}
