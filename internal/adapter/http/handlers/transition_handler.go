package handlers

import (
	"errors"
	"net/http"

	request "cermont_os/internal/adapter/http/dto/request"
	response "cermont_os/internal/adapter/http/dto/response"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase"
	"cermont_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)

// TransitionHandler handles the lifecycle state surface of an order: reading
// the current position, advancing it, and auditing the ledger.

type TransitionHandler struct {
	usecase usecase.ITransitionUseCase
}

func NewTransitionHandler(uc usecase.ITransitionUseCase) *TransitionHandler {
	return &TransitionHandler{usecase: uc}
}

// GetState godoc
// @Summary      Get the lifecycle state of an order
// @Tags         state
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderStateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/state [get]
func (h *TransitionHandler) GetState(c *gin.Context) {
	state, err := h.usecase.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderState(state))
}

// PatchState godoc
// @Summary      Transition an order to a new lifecycle step
// @Description  Validates the requested step against the catalog and applies
// @Description  it atomically together with its history record.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        id          path      string                     true  "Order ID"
// @Param        transition  body      request.TransitionRequest  true  "Destination step"
// @Success      200         {object}  response.TransitionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /orders/{id}/state [patch]
func (h *TransitionHandler) PatchState(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Execute(
		c.Request.Context(),
		c.Param("id"),
		lifecycle.Step(payload.ResolveToStep()),
		payload.ActorID,
		payload.Reason,
		payload.Metadata,
	)
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

// GetHistory godoc
// @Summary      Get the transition history of an order
// @Tags         state
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.TransitionRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/state/history [get]
func (h *TransitionHandler) GetHistory(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionHistory(history))
}

// VerifyLedger godoc
// @Summary      Check the ledger against the cached state
// @Tags         state
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.LedgerCheckResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/state/verify [get]
func (h *TransitionHandler) VerifyLedger(c *gin.Context) {
	check, err := h.usecase.VerifyLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerCheck(check))
}

func mapTransitionError(err error) *pkg.AppError {
	var illegal *usecase.IllegalTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingRequiredReason):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_REASON", "This step requires a reason", http.StatusBadRequest)
	case errors.As(err, &illegal):
		allowed := make([]string, 0, len(illegal.Allowed))
		for _, s := range illegal.Allowed {
			allowed = append(allowed, string(s))
		}
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", illegal.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]interface{}{
				"from":          string(illegal.From),
				"to":            string(illegal.To),
				"allowed_steps": allowed,
			})
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Order changed concurrently, retry with fresh state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
