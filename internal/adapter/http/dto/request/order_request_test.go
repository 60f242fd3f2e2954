package request

import "testing"

func TestCreateOrderRequest_ResolveClientName(t *testing.T) {
	r := CreateOrderRequest{ClientName: "  ACME Field Services  "}
	if got := r.ResolveClientName(); got != "ACME Field Services" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	r2 := CreateOrderRequest{ClientName: "   "}
	if got := r2.ResolveClientName(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestEstimateBreakdownRequest_ToEntity(t *testing.T) {
	r := EstimateBreakdownRequest{Labor: 300, Materials: 200, Equipment: 50, Transport: 25, Other: 10}
	e := r.ToEntity()
	if e.Labor != 300 || e.Materials != 200 || e.Equipment != 50 || e.Transport != 25 || e.Other != 10 {
		t.Fatalf("unexpected entity: %+v", e)
	}
	if e.Total() != 585 {
		t.Fatalf("expected total 585, got %v", e.Total())
	}
}
