package interfaces

import (
	"context"

	"cermont_os/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for gateway payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
