package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cermont_os/internal/adapter/http/handlers/mocks"
	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/orders/:id/payments", h.CreatePayment)
	r.GET("/v1/orders/:id/payments", h.ListPayments)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body charges with empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().
			ChargeInvoice(gomock.Any(), "ord-1", gomock.Any(), "").
			DoAndReturn(func(_ any, _ string, payload json.RawMessage, _ string) (usecase.PaymentOutcome, error) {
				if string(payload) != "{}" {
					t.Fatalf("expected empty payload, got %s", payload)
				}
				return usecase.PaymentOutcome{
					Payment: entities.Payment{ID: "pay-1", OrderID: "ord-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()},
					Transition: usecase.TransitionResult{
						Order: entities.Order{ID: "ord-1", CurrentStep: lifecycle.StepPaymentReceived, Version: 9},
					},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("envelope forwards actor and payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().
			ChargeInvoice(gomock.Any(), "ord-1", gomock.Any(), "billing-ops").
			DoAndReturn(func(_ any, _ string, payload json.RawMessage, _ string) (usecase.PaymentOutcome, error) {
				var p struct {
					Installments int `json:"installments"`
				}
				if err := json.Unmarshal(payload, &p); err != nil || p.Installments != 3 {
					t.Fatalf("unexpected payload %s: %v", payload, err)
				}
				return usecase.PaymentOutcome{
					Payment: entities.Payment{ID: "pay-2", OrderID: "ord-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()},
					Transition: usecase.TransitionResult{
						Order: entities.Order{ID: "ord-1", CurrentStep: lifecycle.StepPaymentReceived, Version: 4},
					},
				}, nil
			})

		body := `{"provider_payload":{"installments":3},"actor_id":"billing-ops"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Payment struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"payment"`
			Transition struct {
				Order struct {
					CurrentStep string `json:"current_step"`
				} `json:"order"`
			} `json:"transition"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp.Payment.ID != "pay-2" || resp.Payment.Status != "approved" {
			t.Fatalf("unexpected payment: %+v", resp.Payment)
		}
		if resp.Transition.Order.CurrentStep != string(lifecycle.StepPaymentReceived) {
			t.Fatalf("unexpected state: %+v", resp.Transition.Order)
		}
	})

	t.Run("order not at invoice-issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().
			ChargeInvoice(gomock.Any(), "ord-1", gomock.Any(), "").
			Return(usecase.PaymentOutcome{}, usecase.ErrOrderNotInvoiced)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp.Code != "ORDER_NOT_INVOICED" {
			t.Fatalf("expected ORDER_NOT_INVOICED, got %q", resp.Code)
		}
	})

	t.Run("denied payment returns 402 with the persisted payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().
			ChargeInvoice(gomock.Any(), "ord-1", gomock.Any(), "").
			Return(usecase.PaymentOutcome{
				Payment: entities.Payment{ID: "pay-3", OrderID: "ord-1", Status: entities.PaymentStatusDenied, Date: time.Now().UTC()},
			}, usecase.ErrPaymentNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		var resp struct {
			Code    string `json:"code"`
			Details struct {
				Payment struct {
					ID     string `json:"id"`
					Status string `json:"status"`
				} `json:"payment"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if resp.Code != "PAYMENT_NOT_APPROVED" {
			t.Fatalf("expected PAYMENT_NOT_APPROVED, got %q", resp.Code)
		}
		if resp.Details.Payment.ID != "pay-3" || resp.Details.Payment.Status != "denied" {
			t.Fatalf("unexpected payment in details: %+v", resp.Details.Payment)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().
			ChargeInvoice(gomock.Any(), "ord-1", gomock.Any(), "").
			Return(usecase.PaymentOutcome{}, usecase.ErrPaymentGatewayNotAvailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().
		ListByOrderID(gomock.Any(), "ord-1").
		Return([]entities.Payment{
			{ID: "pay-1", OrderID: "ord-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()},
			{ID: "pay-2", OrderID: "ord-1", Status: entities.PaymentStatusDenied, Date: time.Now().UTC()},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "pay-1" || resp[1].Status != "denied" {
		t.Fatalf("unexpected payments: %+v", resp)
	}
}
