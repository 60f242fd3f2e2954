package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrOrderNotInvoiced           = errors.New("order has no issued invoice")
	ErrPaymentNotApproved         = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotAvailable = errors.New("payment gateway not configured")
)

// PaymentOutcome bundles the persisted payment with the lifecycle transition
// an approved charge produced.
type PaymentOutcome struct {
	Payment    entities.Payment `json:"payment"`
	Transition TransitionResult `json:"transition"`
}

// IPaymentUseCase charges invoiced orders through the payment gateway. An
// approved charge is what drives the terminal payment-received transition.
type IPaymentUseCase interface {
	ChargeInvoice(ctx context.Context, orderID string, providerPayload json.RawMessage, actorID string) (PaymentOutcome, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	orderRepo   interfaces.IOrderStateRepository
	gateway     interfaces.IPaymentGateway
	transitions ITransitionUseCase
	logger      *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	orderRepo interfaces.IOrderStateRepository,
	gateway interfaces.IPaymentGateway,
	transitions ITransitionUseCase,
	logger *zap.Logger,
) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, transitions: transitions, logger: logger}
}

// ChargeInvoice validates the order is at invoice-issued, charges the
// gateway, persists the payment, and on approval executes the terminal
// transition. The charge amount always comes from the order's estimate in the
// store, never from the caller's payload.
func (u *PaymentUseCase) ChargeInvoice(
	ctx context.Context,
	orderID string,
	providerPayload json.RawMessage,
	actorID string,
) (PaymentOutcome, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return PaymentOutcome{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return PaymentOutcome{}, ErrPaymentGatewayNotAvailable
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return PaymentOutcome{}, ErrInvalidProviderPayload
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return PaymentOutcome{}, err
	}
	if o.ID == "" {
		return PaymentOutcome{}, ErrOrderNotFound
	}
	if o.CurrentStep != lifecycle.StepInvoiceIssued {
		return PaymentOutcome{}, ErrOrderNotInvoiced
	}

	providerPayload = u.enrichPayload(providerPayload, o)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		u.logger.Warn("payment gateway charge failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return PaymentOutcome{}, err
	}

	status := entities.PaymentStatusApproved
	if !strings.EqualFold(providerStatus, "approved") {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		OrderID:            o.ID,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return PaymentOutcome{}, err
	}

	if status != entities.PaymentStatusApproved {
		u.logger.Info("payment denied by provider",
			zap.String("order_id", o.ID),
			zap.String("payment_id", created.ID),
			zap.String("provider_status", providerStatus),
		)
		return PaymentOutcome{Payment: created}, ErrPaymentNotApproved
	}

	reason := fmt.Sprintf("payment %s approved by provider", created.ID)
	result, err := u.transitions.Execute(ctx, o.ID, lifecycle.StepPaymentReceived, actorID, reason, map[string]string{
		"payment_id":      created.ID,
		"provider_status": providerStatus,
	})
	if err != nil {
		// The charge went through but the transition did not; surface the
		// error so the caller retries the transition, not the charge.
		u.logger.Error("approved payment could not close the order",
			zap.String("order_id", o.ID),
			zap.String("payment_id", created.ID),
			zap.Error(err),
		)
		return PaymentOutcome{Payment: created}, err
	}

	return PaymentOutcome{Payment: created, Transition: result}, nil
}

// enrichPayload pins external_reference, description and the transaction
// amount to the order on record before the payload reaches the provider.
func (u *PaymentUseCase) enrichPayload(payload json.RawMessage, o entities.Order) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = o.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Work order %s", o.Number)
	}
	reqMap["transaction_amount"] = o.Estimate.Total()
	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
