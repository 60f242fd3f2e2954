package usecase

import (
	"context"
	"fmt"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const triggerTimeout = 5 * time.Second

// trigger is one side effect bound to entering a step.
type trigger struct {
	name string
	run  func(ctx context.Context, o entities.Order, rec entities.TransitionRecord) error
}

// TriggerEngine maps a newly entered step to its fixed set of side effects.
// The table is total over the catalog: steps without an entry are no-ops.
// Every trigger is independently caught; a failure is logged and reported as
// a warning, never propagated, and never affects the committed transition.
type TriggerEngine struct {
	planningRepo interfaces.IPlanningRepository
	alerts       IAlertUseCase
	costs        ICostUseCase
	logger       *zap.Logger

	table map[lifecycle.Step][]trigger
}

func NewTriggerEngine(
	planningRepo interfaces.IPlanningRepository,
	alerts IAlertUseCase,
	costs ICostUseCase,
	logger *zap.Logger,
) *TriggerEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &TriggerEngine{planningRepo: planningRepo, alerts: alerts, costs: costs, logger: logger}
	e.table = map[lifecycle.Step][]trigger{
		lifecycle.StepProposalApproved: {
			{name: "provision-planning-draft", run: e.provisionPlanningDraft},
		},
		lifecycle.StepDeliveryActDrafted: {
			{name: "raise-document-unsigned-alert", run: e.raiseDocumentUnsignedAlert},
		},
		lifecycle.StepServiceEntryApproved: {
			{name: "recompute-cost-comparison", run: e.recomputeCostComparison},
		},
		lifecycle.StepPaymentReceived: {
			{name: "finalize-order", run: e.finalizeOrder},
		},
	}
	return e
}

// OnEntered runs the side effects registered for the step the order just
// entered. Returns human-readable warnings for every trigger that failed.
func (e *TriggerEngine) OnEntered(ctx context.Context, o entities.Order, rec entities.TransitionRecord) []string {
	var warnings []string
	for _, t := range e.table[o.CurrentStep] {
		tctx, cancel := context.WithTimeout(ctx, triggerTimeout)
		err := t.run(tctx, o, rec)
		cancel()
		if err != nil {
			e.logger.Warn("lifecycle trigger failed",
				zap.String("trigger", t.name),
				zap.String("order_id", o.ID),
				zap.String("step", string(o.CurrentStep)),
				zap.Error(err),
			)
			warnings = append(warnings, fmt.Sprintf("trigger %s failed: %v", t.name, err))
		}
	}
	return warnings
}

func (e *TriggerEngine) provisionPlanningDraft(ctx context.Context, o entities.Order, _ entities.TransitionRecord) error {
	if e.planningRepo == nil {
		return nil
	}
	planning, created, err := e.planningRepo.CreateIfAbsent(ctx, o.ID)
	if err != nil {
		return err
	}
	if created {
		e.logger.Info("planning draft provisioned",
			zap.String("order_id", o.ID),
			zap.String("planning_id", planning.ID),
		)
	}
	return nil
}

func (e *TriggerEngine) raiseDocumentUnsignedAlert(ctx context.Context, o entities.Order, _ entities.TransitionRecord) error {
	if e.alerts == nil {
		return nil
	}
	_, err := e.alerts.Raise(ctx, o.ID,
		entities.AlertDocumentUnsigned,
		entities.AlertPriorityWarning,
		"Delivery act pending signature",
		fmt.Sprintf("Order %s has a drafted delivery act waiting for the client's signature.", o.Number),
		o.AssignedTechnicianID,
	)
	return err
}

func (e *TriggerEngine) recomputeCostComparison(ctx context.Context, o entities.Order, _ entities.TransitionRecord) error {
	if e.costs == nil {
		return nil
	}
	_, err := e.costs.Recompute(ctx, o.ID)
	return err
}

func (e *TriggerEngine) finalizeOrder(_ context.Context, o entities.Order, rec entities.TransitionRecord) error {
	// The completion stamp is written by the same atomic call that applied
	// the transition; here we only verify and announce it.
	if o.CompletedAt == nil {
		return fmt.Errorf("order %s entered %s without a completion stamp", o.ID, o.CurrentStep)
	}
	e.logger.Info("order finalized",
		zap.String("order_id", o.ID),
		zap.String("number", o.Number),
		zap.String("actor_id", rec.ActorID),
		zap.Time("completed_at", *o.CompletedAt),
	)
	return nil
}
