package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	mock_interfaces "cermont_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTriggerEngine_NoopSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No repositories may be touched for steps without registered triggers.
	planning := mock_interfaces.NewMockIPlanningRepository(ctrl)
	engine := NewTriggerEngine(planning, nil, nil, nil)

	for _, step := range []lifecycle.Step{
		lifecycle.StepRequestReceived,
		lifecycle.StepVisitScheduled,
		lifecycle.StepWorkInProgress,
		lifecycle.StepOrderCancelled,
	} {
		o := testOrder(step, 1)
		if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
			t.Fatalf("step %s: expected no warnings, got %v", step, warnings)
		}
	}
}

func TestTriggerEngine_ProposalApprovedProvisionsPlanning(t *testing.T) {
	t.Run("creates draft when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		planning := mock_interfaces.NewMockIPlanningRepository(ctrl)
		engine := NewTriggerEngine(planning, nil, nil, nil)

		planning.EXPECT().CreateIfAbsent(gomock.Any(), "ord-1").Return(
			entities.Planning{ID: "plan-1", OrderID: "ord-1", Status: entities.PlanningStatusDraft}, true, nil)

		o := testOrder(lifecycle.StepProposalApproved, 4)
		if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
	})

	t.Run("second firing is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		planning := mock_interfaces.NewMockIPlanningRepository(ctrl)
		engine := NewTriggerEngine(planning, nil, nil, nil)

		existing := entities.Planning{ID: "plan-1", OrderID: "ord-1", Status: entities.PlanningStatusDraft}
		planning.EXPECT().CreateIfAbsent(gomock.Any(), "ord-1").Return(existing, false, nil).Times(2)

		o := testOrder(lifecycle.StepProposalApproved, 4)
		engine.OnEntered(context.Background(), o, entities.TransitionRecord{})
		if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
			t.Fatalf("expected idempotent trigger, got %v", warnings)
		}
	})
}

func TestTriggerEngine_DeliveryActDraftedRaisesAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	alertRepo := mock_interfaces.NewMockIAlertRepository(ctrl)
	alerts := NewAlertUseCase(alertRepo, nil)
	engine := NewTriggerEngine(nil, alerts, nil, nil)

	alertRepo.EXPECT().CreateOpenIfAbsent(gomock.Any(), gomock.AssignableToTypeOf(entities.Alert{})).DoAndReturn(
		func(_ context.Context, a entities.Alert) (entities.Alert, bool, error) {
			if a.Type != entities.AlertDocumentUnsigned || a.Priority != entities.AlertPriorityWarning {
				t.Fatalf("unexpected alert: %+v", a)
			}
			if a.TargetUser != "tech-7" {
				t.Fatalf("alert must target the assigned technician, got %q", a.TargetUser)
			}
			return a, true, nil
		},
	)

	o := testOrder(lifecycle.StepDeliveryActDrafted, 9)
	o.AssignedTechnicianID = "tech-7"
	if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestTriggerEngine_ServiceEntryApprovedRecomputesCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
	entryRepo := mock_interfaces.NewMockICostEntryRepository(ctrl)
	comparisonRepo := mock_interfaces.NewMockICostComparisonRepository(ctrl)
	costs := NewCostUseCase(orderRepo, entryRepo, comparisonRepo)
	engine := NewTriggerEngine(nil, nil, costs, nil)

	o := testOrder(lifecycle.StepServiceEntryApproved, 11)
	o.Estimate = entities.EstimateBreakdown{Labor: 100}

	orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
	entryRepo.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return([]entities.CostEntry{{Amount: 130}}, nil)
	comparisonRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.CostComparison) (entities.CostComparison, error) {
			if c.VariancePercentage != 30 {
				t.Fatalf("expected 30%% variance, got %v", c.VariancePercentage)
			}
			return c, nil
		},
	)

	if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestTriggerEngine_FailureIsCaughtPerTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	planning := mock_interfaces.NewMockIPlanningRepository(ctrl)
	engine := NewTriggerEngine(planning, nil, nil, nil)

	planning.EXPECT().CreateIfAbsent(gomock.Any(), "ord-1").Return(entities.Planning{}, false, errors.New("db down"))

	o := testOrder(lifecycle.StepProposalApproved, 4)
	warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{})
	if len(warnings) != 1 || !strings.Contains(warnings[0], "provision-planning-draft") {
		t.Fatalf("expected one warning naming the trigger, got %v", warnings)
	}
}

func TestTriggerEngine_FinalizeVerifiesCompletionStamp(t *testing.T) {
	engine := NewTriggerEngine(nil, nil, nil, nil)

	o := testOrder(lifecycle.StepPaymentReceived, 12)
	warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{})
	if len(warnings) != 1 {
		t.Fatalf("unstamped completed order must warn, got %v", warnings)
	}

	now := time.Now().UTC()
	o.CompletedAt = &now
	if warnings := engine.OnEntered(context.Background(), o, entities.TransitionRecord{}); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}
