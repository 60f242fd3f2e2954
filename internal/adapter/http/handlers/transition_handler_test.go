package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cermont_os/internal/adapter/http/handlers/mocks"
	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func transitionRouter(h *TransitionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/orders/:id/state", h.GetState)
	r.PATCH("/v1/orders/:id/state", h.PatchState)
	r.GET("/v1/orders/:id/state/history", h.GetHistory)
	r.GET("/v1/orders/:id/state/verify", h.VerifyLedger)
	return r
}

func TestTransitionHandler_PatchState(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/state", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		result := usecase.TransitionResult{
			Order: entities.Order{
				ID:           "ord-1",
				Number:       "OT-000001",
				CurrentStep:  lifecycle.StepVisitScheduled,
				CoarseStatus: lifecycle.CoarseOf(lifecycle.StepVisitScheduled),
				Version:      2,
				ClientName:   "ACME",
				Priority:     entities.PriorityMedium,
			},
			Record: entities.TransitionRecord{
				ID:       "rec-1",
				OrderID:  "ord-1",
				Seq:      2,
				FromStep: lifecycle.StepRequestReceived,
				ToStep:   lifecycle.StepVisitScheduled,
				ActorID:  "dispatcher-1",
				At:       time.Now().UTC(),
			},
			AllowedNext: lifecycle.AllowedFrom(lifecycle.StepVisitScheduled),
		}
		uc.EXPECT().
			Execute(gomock.Any(), "ord-1", lifecycle.StepVisitScheduled, "dispatcher-1", "", nil).
			Return(result, nil)

		body := `{"to_step":"visit-scheduled","actor_id":"dispatcher-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/state", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp["record"].(map[string]any)["to_step"] != "visit-scheduled" {
			t.Fatalf("unexpected record in response: %v", resp["record"])
		}
	})

	t.Run("illegal transition returns 422 with allowed steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		uc.EXPECT().
			Execute(gomock.Any(), "ord-1", lifecycle.StepInvoiceIssued, "", "", nil).
			Return(usecase.TransitionResult{}, &usecase.IllegalTransitionError{
				From:    lifecycle.StepRequestReceived,
				To:      lifecycle.StepInvoiceIssued,
				Allowed: []lifecycle.Step{lifecycle.StepVisitScheduled, lifecycle.StepOrderCancelled},
			})

		body := `{"to_step":"invoice-issued"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/state", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp struct {
			Code    string `json:"code"`
			Details struct {
				AllowedSteps []string `json:"allowed_steps"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp.Code != "ILLEGAL_TRANSITION" {
			t.Fatalf("unexpected code %q", resp.Code)
		}
		if len(resp.Details.AllowedSteps) != 2 {
			t.Fatalf("expected allowed steps in details, got %+v", resp.Details)
		}
	})

	t.Run("missing reason returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		uc.EXPECT().
			Execute(gomock.Any(), "ord-1", lifecycle.StepOrderCancelled, "", "", nil).
			Return(usecase.TransitionResult{}, usecase.ErrMissingRequiredReason)

		body := `{"to_step":"order-cancelled"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/state", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale state returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		uc.EXPECT().
			Execute(gomock.Any(), "ord-1", lifecycle.StepVisitScheduled, "", "", nil).
			Return(usecase.TransitionResult{}, usecase.ErrStaleState)

		body := `{"to_step":"visit-scheduled"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/state", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestTransitionHandler_GetState(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		uc.EXPECT().GetState(gomock.Any(), "missing").Return(usecase.OrderState{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing/state", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)
		r := transitionRouter(NewTransitionHandler(uc))

		uc.EXPECT().GetState(gomock.Any(), "ord-1").Return(usecase.OrderState{
			OrderID:      "ord-1",
			Number:       "OT-000001",
			CurrentStep:  lifecycle.StepProposalDrafted,
			StepNumber:   4,
			TotalSteps:   16,
			CoarseStatus: lifecycle.CoarseOf(lifecycle.StepProposalDrafted),
			AllowedNext:  lifecycle.AllowedFrom(lifecycle.StepProposalDrafted),
			UpdatedAt:    time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/state", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			StepNumber  int      `json:"step_number"`
			TotalSteps  int      `json:"total_steps"`
			AllowedNext []string `json:"allowed_next"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp.StepNumber != 4 || resp.TotalSteps != 16 {
			t.Fatalf("unexpected position: %+v", resp)
		}
		if len(resp.AllowedNext) == 0 {
			t.Fatal("expected allowed next steps")
		}
	})
}

func TestTransitionHandler_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITransitionUseCase(ctrl)
	r := transitionRouter(NewTransitionHandler(uc))

	uc.EXPECT().History(gomock.Any(), "ord-1").Return([]entities.TransitionRecord{
		{ID: "rec-1", OrderID: "ord-1", Seq: 1, ToStep: lifecycle.StepRequestReceived},
		{ID: "rec-2", OrderID: "ord-1", Seq: 2, FromStep: lifecycle.StepRequestReceived, ToStep: lifecycle.StepVisitScheduled},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/state/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp))
	}
	if _, ok := resp[0]["from_step"]; ok {
		t.Fatal("creation record must omit from_step")
	}
}

func TestTransitionHandler_VerifyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITransitionUseCase(ctrl)
	r := transitionRouter(NewTransitionHandler(uc))

	uc.EXPECT().VerifyLedger(gomock.Any(), "ord-1").Return(usecase.LedgerCheck{
		OrderID:    "ord-1",
		Consistent: true,
		CachedStep: lifecycle.StepWorkInProgress,
		LedgerStep: lifecycle.StepWorkInProgress,
		Entries:    8,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/state/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Consistent bool `json:"consistent"`
		Entries    int  `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if !resp.Consistent || resp.Entries != 8 {
		t.Fatalf("unexpected check: %+v", resp)
	}
}
