package handlers

import (
	"errors"
	"net/http"

	request "cermont_os/internal/adapter/http/dto/request"
	response "cermont_os/internal/adapter/http/dto/response"
	"cermont_os/internal/usecase"
	"cermont_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCostPayload = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid cost payload", http.StatusBadRequest)

// CostHandler handles HTTP requests for actual costs and the
// estimated-vs-actual comparison.

type CostHandler struct {
	usecase usecase.ICostUseCase
}

func NewCostHandler(uc usecase.ICostUseCase) *CostHandler {
	return &CostHandler{usecase: uc}
}

// AddCostEntry godoc
// @Summary      Record an actual cost against an order
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        id     path      string                    true  "Order ID"
// @Param        entry  body      request.CostEntryRequest  true  "Cost entry"
// @Success      201    {object}  response.CostEntryCreatedResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /orders/{id}/costs [post]
func (h *CostHandler) AddCostEntry(c *gin.Context) {
	var payload request.CostEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	entry, comparison, err := h.usecase.AddEntry(
		c.Request.Context(),
		c.Param("id"),
		payload.Category,
		payload.Description,
		payload.Amount,
		payload.RecordedBy,
	)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CostEntryCreatedResponse{
		Entry:      response.FromCostEntry(entry),
		Comparison: response.FromCostComparison(comparison),
	})
}

// GetCostComparison godoc
// @Summary      Get the estimated-vs-actual comparison of an order
// @Tags         costs
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.CostComparisonResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/costs/comparison [get]
func (h *CostHandler) GetCostComparison(c *gin.Context) {
	comparison, err := h.usecase.GetComparison(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostComparison(comparison))
}

func mapCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCostAmount),
		errors.Is(err, usecase.ErrInvalidCostCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrComparisonNotFound):
		return pkg.NewDomainErrorSimple("COMPARISON_NOT_FOUND", "No cost comparison for this order yet", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
