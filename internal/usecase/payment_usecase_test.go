package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	mock_interfaces "cermont_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubTransitions records the transition the payment flow requested instead
// of exercising the full executor.
type stubTransitions struct {
	executed  bool
	orderID   string
	requested lifecycle.Step
	reason    string
	metadata  map[string]string
	result    TransitionResult
	err       error
}

var _ ITransitionUseCase = (*stubTransitions)(nil)

func (s *stubTransitions) Execute(_ context.Context, orderID string, requested lifecycle.Step, _, reason string, metadata map[string]string) (TransitionResult, error) {
	s.executed = true
	s.orderID = orderID
	s.requested = requested
	s.reason = reason
	s.metadata = metadata
	return s.result, s.err
}

func (s *stubTransitions) GetState(context.Context, string) (OrderState, error) {
	return OrderState{}, nil
}

func (s *stubTransitions) History(context.Context, string) ([]entities.TransitionRecord, error) {
	return nil, nil
}

func (s *stubTransitions) VerifyLedger(context.Context, string) (LedgerCheck, error) {
	return LedgerCheck{}, nil
}

func TestPaymentUseCase_ChargeInvoice(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ChargeInvoice(context.Background(), "ord-1", nil, "finance-1")
		if !errors.Is(err, ErrPaymentGatewayNotAvailable) {
			t.Fatalf("expected ErrPaymentGatewayNotAvailable, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway, nil, nil)

		_, err := uc.ChargeInvoice(context.Background(), "ord-1", json.RawMessage("{not json"), "finance-1")
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("order not at invoice-issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, gateway, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(testOrder(lifecycle.StepWorkInProgress, 6), nil)

		_, err := uc.ChargeInvoice(context.Background(), "ord-1", nil, "finance-1")
		if !errors.Is(err, ErrOrderNotInvoiced) {
			t.Fatalf("expected ErrOrderNotInvoiced, got %v", err)
		}
	})

	t.Run("approved charge closes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transitions := &stubTransitions{}
		uc := NewPaymentUseCase(repo, orderRepo, gateway, transitions, nil)

		o := testOrder(lifecycle.StepInvoiceIssued, 14)
		o.Estimate = entities.EstimateBreakdown{Labor: 300, Materials: 200}
		orderRepo.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)

		gateway.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload must be valid json: %v", err)
				}
				if m["external_reference"] != o.ID {
					t.Fatalf("external_reference must be pinned to the order, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 500.0 {
					t.Fatalf("amount must come from the estimate, got %v", m["transaction_amount"])
				}
				return "pay-123", "approved", json.RawMessage(`{"id":"pay-123","status":"approved"}`), nil
			})

		repo.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "pay-123" || p.OrderID != o.ID {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved status, got %q", p.Status)
				}
				return p, nil
			})

		outcome, err := uc.ChargeInvoice(context.Background(), o.ID, json.RawMessage(`{"payment_method_id":"pix"}`), "finance-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !transitions.executed {
			t.Fatal("approved charge must execute the closing transition")
		}
		if transitions.requested != lifecycle.StepPaymentReceived {
			t.Fatalf("expected transition to payment-received, got %q", transitions.requested)
		}
		if transitions.metadata["payment_id"] != "pay-123" {
			t.Fatalf("transition metadata must carry the payment id, got %v", transitions.metadata)
		}
		if transitions.reason == "" {
			t.Fatal("terminal transition requires a reason")
		}
		if outcome.Payment.ID != "pay-123" {
			t.Fatalf("unexpected outcome payment: %+v", outcome.Payment)
		}
	})

	t.Run("denied charge is persisted but does not transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transitions := &stubTransitions{}
		uc := NewPaymentUseCase(repo, orderRepo, gateway, transitions, nil)

		o := testOrder(lifecycle.StepInvoiceIssued, 14)
		orderRepo.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
		gateway.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return("pay-456", "rejected", json.RawMessage(`{"id":"pay-456","status":"rejected"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusDenied {
					t.Fatalf("expected denied status, got %q", p.Status)
				}
				return p, nil
			},
		)

		outcome, err := uc.ChargeInvoice(context.Background(), o.ID, nil, "finance-1")
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
		if transitions.executed {
			t.Fatal("denied charge must not transition the order")
		}
		if outcome.Payment.ID != "pay-456" {
			t.Fatalf("denied payment must still be returned, got %+v", outcome.Payment)
		}
	})

	t.Run("approved charge with failing transition surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		transitions := &stubTransitions{err: ErrStaleState}
		uc := NewPaymentUseCase(repo, orderRepo, gateway, transitions, nil)

		o := testOrder(lifecycle.StepInvoiceIssued, 14)
		orderRepo.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
		gateway.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return("pay-789", "approved", json.RawMessage(`{"id":"pay-789"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		outcome, err := uc.ChargeInvoice(context.Background(), o.ID, nil, "finance-1")
		if !errors.Is(err, ErrStaleState) {
			t.Fatalf("expected ErrStaleState, got %v", err)
		}
		if outcome.Payment.ID != "pay-789" {
			t.Fatalf("payment must be returned even when the transition fails, got %+v", outcome.Payment)
		}
	})
}

func TestPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("lists payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

		got, err := uc.ListByOrderID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "pay-1" {
			t.Fatalf("unexpected payments: %+v", got)
		}
	})
}
