package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const eventPublishTimeout = 2 * time.Second

// OrderState is the read model for GET /orders/:id/state.
type OrderState struct {
	OrderID      string                 `json:"order_id"`
	Number       string                 `json:"number"`
	CurrentStep  lifecycle.Step         `json:"current_step"`
	StepNumber   int                    `json:"step_number"`
	TotalSteps   int                    `json:"total_steps"`
	CoarseStatus lifecycle.CoarseStatus `json:"coarse_status"`
	AllowedNext  []lifecycle.Step       `json:"allowed_next"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// TransitionResult is returned once the transition and its ledger record are
// durably committed. Warnings report trigger failures that happened after the
// commit; they never mean the transition itself failed.
type TransitionResult struct {
	Order       entities.Order            `json:"order"`
	Record      entities.TransitionRecord `json:"record"`
	AllowedNext []lifecycle.Step          `json:"allowed_next"`
	Warnings    []string                  `json:"warnings,omitempty"`
}

// LedgerCheck reports whether the cached step matches a replay of the ledger.
type LedgerCheck struct {
	OrderID    string         `json:"order_id"`
	Consistent bool           `json:"consistent"`
	CachedStep lifecycle.Step `json:"cached_step"`
	LedgerStep lifecycle.Step `json:"ledger_step"`
	Entries    int            `json:"entries"`
}

// ITransitionUseCase is the transition executor plus the state read surface.
type ITransitionUseCase interface {
	Execute(ctx context.Context, orderID string, requested lifecycle.Step, actorID, reason string, metadata map[string]string) (TransitionResult, error)
	GetState(ctx context.Context, orderID string) (OrderState, error)
	History(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)
	VerifyLedger(ctx context.Context, orderID string) (LedgerCheck, error)
}

// TransitionUseCase applies validated lifecycle transitions. The
// load-validate-write sequence is guarded by the order's version: the store
// rejects the write when the version moved, so two concurrent executes
// against the same order can never both succeed on the same pre-read state.
type TransitionUseCase struct {
	repo      interfaces.IOrderStateRepository
	publisher interfaces.IEventPublisher
	triggers  *TriggerEngine
	logger    *zap.Logger
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(
	repo interfaces.IOrderStateRepository,
	publisher interfaces.IEventPublisher,
	triggers *TriggerEngine,
	logger *zap.Logger,
) *TransitionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransitionUseCase{repo: repo, publisher: publisher, triggers: triggers, logger: logger}
}

func (u *TransitionUseCase) Execute(
	ctx context.Context,
	orderID string,
	requested lifecycle.Step,
	actorID, reason string,
	metadata map[string]string,
) (TransitionResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TransitionResult{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if o.ID == "" {
		return TransitionResult{}, ErrOrderNotFound
	}

	if rej := lifecycle.Validate(o.CurrentStep, requested, reason); rej != nil {
		if rej.Kind == lifecycle.RejectionMissingReason {
			return TransitionResult{}, ErrMissingRequiredReason
		}
		return TransitionResult{}, &IllegalTransitionError{From: o.CurrentStep, To: requested, Allowed: rej.AllowedSteps}
	}

	now := time.Now().UTC()
	record := entities.TransitionRecord{
		ID:       uuid.NewString(),
		OrderID:  o.ID,
		Seq:      o.Version + 1,
		FromStep: o.CurrentStep,
		ToStep:   requested,
		ActorID:  strings.TrimSpace(actorID),
		Note:     strings.TrimSpace(reason),
		Metadata: metadata,
		At:       now,
	}

	write := interfaces.TransitionWrite{
		OrderID:         o.ID,
		ExpectedVersion: o.Version,
		FromStep:        o.CurrentStep,
		ToStep:          requested,
		CoarseStatus:    lifecycle.CoarseOf(requested),
		Record:          record,
	}
	// The completion stamp rides on the same atomic write as the transition
	// so the finalize trigger can never observe an unstamped completed order.
	if requested == lifecycle.StepPaymentReceived {
		write.CompletedAt = &now
	}

	updated, err := u.repo.ApplyTransition(ctx, write)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.logger.Warn("transition lost optimistic concurrency race",
				zap.String("order_id", o.ID),
				zap.String("from", string(o.CurrentStep)),
				zap.String("to", string(requested)),
			)
			return TransitionResult{}, ErrStaleState
		}
		return TransitionResult{}, err
	}

	u.publishStateChanged(entities.OrderStateChangedEvent{
		OrderID:   updated.ID,
		FromStep:  record.FromStep,
		ToStep:    record.ToStep,
		ActorID:   record.ActorID,
		Timestamp: record.At,
	})

	// Triggers run after the commit. Their failures degrade to warnings on
	// the result; the transition is already the source of truth.
	var warnings []string
	if u.triggers != nil {
		warnings = u.triggers.OnEntered(ctx, updated, record)
	}

	return TransitionResult{
		Order:       updated,
		Record:      record,
		AllowedNext: lifecycle.AllowedFrom(updated.CurrentStep),
		Warnings:    warnings,
	}, nil
}

// publishStateChanged delivers the domain event with its own deadline,
// detached from the request context so a cancelled caller cannot interrupt a
// commit that already happened.
func (u *TransitionUseCase) publishStateChanged(evt entities.OrderStateChangedEvent) {
	if u.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventPublishTimeout)
	defer cancel()
	if err := u.publisher.PublishOrderStateChanged(ctx, evt); err != nil {
		u.logger.Warn("order state event publish failed",
			zap.String("order_id", evt.OrderID),
			zap.String("to", string(evt.ToStep)),
			zap.Error(err),
		)
	}
}

func (u *TransitionUseCase) GetState(ctx context.Context, orderID string) (OrderState, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderState{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return OrderState{}, err
	}
	if o.ID == "" {
		return OrderState{}, ErrOrderNotFound
	}

	return OrderState{
		OrderID:      o.ID,
		Number:       o.Number,
		CurrentStep:  o.CurrentStep,
		StepNumber:   lifecycle.Number(o.CurrentStep),
		TotalSteps:   lifecycle.TotalSteps(),
		CoarseStatus: o.CoarseStatus,
		AllowedNext:  lifecycle.AllowedFrom(o.CurrentStep),
		UpdatedAt:    o.UpdatedAt,
	}, nil
}

func (u *TransitionUseCase) History(ctx context.Context, orderID string) ([]entities.TransitionRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}

	return u.repo.ListHistory(ctx, orderID)
}

// VerifyLedger replays the history ledger and compares its last ToStep with
// the cached CurrentStep. Used as a consistency check and recovery aid.
func (u *TransitionUseCase) VerifyLedger(ctx context.Context, orderID string) (LedgerCheck, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return LedgerCheck{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return LedgerCheck{}, err
	}
	if o.ID == "" {
		return LedgerCheck{}, ErrOrderNotFound
	}

	history, err := u.repo.ListHistory(ctx, orderID)
	if err != nil {
		return LedgerCheck{}, err
	}

	check := LedgerCheck{OrderID: o.ID, CachedStep: o.CurrentStep, Entries: len(history)}
	if len(history) > 0 {
		check.LedgerStep = history[len(history)-1].ToStep
	}
	check.Consistent = check.LedgerStep == check.CachedStep
	if !check.Consistent {
		u.logger.Error("ledger replay disagrees with cached step",
			zap.String("order_id", o.ID),
			zap.String("cached", string(check.CachedStep)),
			zap.String("ledger", string(check.LedgerStep)),
		)
	}
	return check, nil
}
