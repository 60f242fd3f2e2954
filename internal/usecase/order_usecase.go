package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientName = errors.New("invalid client name")
	ErrInvalidPriority   = errors.New("invalid priority")
)

// CreateOrderInput carries the business attributes a new work order starts
// with. The lifecycle position is not an input: every order begins at the
// first catalog step.
type CreateOrderInput struct {
	ClientName           string
	Description          string
	Priority             entities.Priority
	AssignedTechnicianID string
	Estimate             entities.EstimateBreakdown
	ScheduledStart       *time.Time
	ScheduledEnd         *time.Time
	ActorID              string
}

// IOrderUseCase exposes order creation and reads for the lifecycle surface.
type IOrderUseCase interface {
	Create(ctx context.Context, input CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderStateRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderStateRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create persists a new order at the first catalog step together with its
// creation ledger record. The human-readable number comes from an atomic
// sequence and is immutable afterwards.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (entities.Order, error) {
	clientName := strings.TrimSpace(input.ClientName)
	if clientName == "" {
		return entities.Order{}, ErrInvalidClientName
	}

	priority := input.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	switch priority {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
	default:
		return entities.Order{}, ErrInvalidPriority
	}

	seq, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:                   uuid.NewString(),
		Number:               fmt.Sprintf("OT-%06d", seq),
		CurrentStep:          lifecycle.FirstStep,
		CoarseStatus:         lifecycle.CoarseOf(lifecycle.FirstStep),
		Version:              1,
		ClientName:           clientName,
		Description:          strings.TrimSpace(input.Description),
		Priority:             priority,
		AssignedTechnicianID: strings.TrimSpace(input.AssignedTechnicianID),
		Estimate:             input.Estimate,
		ScheduledStart:       input.ScheduledStart,
		ScheduledEnd:         input.ScheduledEnd,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	initial := entities.TransitionRecord{
		ID:      uuid.NewString(),
		OrderID: o.ID,
		Seq:     1,
		ToStep:  lifecycle.FirstStep,
		ActorID: strings.TrimSpace(input.ActorID),
		Note:    "order created",
		At:      now,
	}

	return u.repo.Create(ctx, o, initial)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
