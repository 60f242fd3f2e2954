package interfaces

import (
	"context"

	"cermont_os/internal/domain/entities"
)

// IEventPublisher abstracts the messaging infrastructure the core publishes
// OrderStateChanged events to. Publication is fire-and-forget: errors are
// logged by the caller and never fail the transition that produced the event.
type IEventPublisher interface {
	PublishOrderStateChanged(ctx context.Context, evt entities.OrderStateChangedEvent) error
}
