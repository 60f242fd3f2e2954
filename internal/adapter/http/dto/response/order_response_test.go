package response

import (
	"testing"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:           "ord-1",
		Number:       "OT-000042",
		CurrentStep:  lifecycle.StepWorkInProgress,
		CoarseStatus: lifecycle.StatusInExecution,
		Version:      7,
		ClientName:   "ACME Field Services",
		Priority:     entities.PriorityHigh,
		Estimate:     entities.EstimateBreakdown{Labor: 300, Materials: 200},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.Number != "OT-000042" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.CurrentStep != "work-in-progress" || res.StepNumber != lifecycle.Number(lifecycle.StepWorkInProgress) {
		t.Fatalf("unexpected step fields: %+v", res)
	}
	if res.CoarseStatus != "in-execution" || res.Version != 7 {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if res.Estimate.Total != 500 {
		t.Fatalf("expected estimate total 500, got %v", res.Estimate.Total)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
