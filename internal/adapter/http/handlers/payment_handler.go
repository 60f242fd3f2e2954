package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "cermont_os/internal/adapter/http/dto/response"
	"cermont_os/internal/usecase"
	"cermont_os/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for invoice payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Charge the invoice of an order
// @Description  Sends the charge to the payment provider; an approved charge
// @Description  also applies the terminal payment-received transition.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true   "Order ID"
// @Param        payment  body      request.PaymentCreateRequest   false  "Provider payload"
// @Success      200      {object}  response.PaymentOutcomeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	payload, actorID, err := readPaymentPayload(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ChargeInvoice(c.Request.Context(), c.Param("id"), payload, actorID)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotApproved) {
			// The denied payment is persisted; return it with the failure.
			appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment denied by provider", http.StatusPaymentRequired).
				WithDetails(map[string]interface{}{"payment": response.FromPayment(outcome.Payment)})
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentOutcome(outcome))
}

// ListPayments godoc
// @Summary      List the payments recorded for an order
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// readPaymentPayload accepts either a bare provider payload or the
// {"provider_payload": ..., "actor_id": ...} envelope. An empty body charges
// with an empty payload, which the mock gateway approves.
func readPaymentPayload(c *gin.Context) (json.RawMessage, string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, "", err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), "", nil
	}
	if !json.Valid(raw) {
		return nil, "", errors.New("request body is not valid json")
	}

	var envelope struct {
		ProviderPayload json.RawMessage `json:"provider_payload"`
		ActorID         string          `json:"actor_id"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.ProviderPayload) > 0 {
		wrapped := strings.TrimSpace(string(envelope.ProviderPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, "", errors.New("provider_payload cannot be empty")
		}
		return envelope.ProviderPayload, strings.TrimSpace(envelope.ActorID), nil
	}

	return json.RawMessage(raw), "", nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidProviderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotInvoiced):
		return pkg.NewDomainErrorSimple("ORDER_NOT_INVOICED", "Order has no issued invoice to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Order changed concurrently, retry with fresh state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotAvailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
