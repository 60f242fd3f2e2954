package handlers

import (
	"errors"
	"net/http"

	response "cermont_os/internal/adapter/http/dto/response"
	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase"
	"cermont_os/pkg"

	"github.com/gin-gonic/gin"
)

// AlertHandler handles HTTP requests for order alerts.

type AlertHandler struct {
	usecase usecase.IAlertUseCase
}

func NewAlertHandler(uc usecase.IAlertUseCase) *AlertHandler {
	return &AlertHandler{usecase: uc}
}

// ListAlerts godoc
// @Summary      List the alerts of an order
// @Tags         alerts
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.AlertResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{id}/alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlerts(alerts))
}

// MarkAlertRead godoc
// @Summary      Mark the open alert of a type as read
// @Tags         alerts
// @Produce      json
// @Param        id    path      string  true  "Order ID"
// @Param        type  path      string  true  "Alert type"
// @Success      200   {object}  response.AlertResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /orders/{id}/alerts/{type}/read [patch]
func (h *AlertHandler) MarkAlertRead(c *gin.Context) {
	alert, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"), entities.AlertType(c.Param("type")))
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlert(alert))
}

// ResolveAlert godoc
// @Summary      Resolve the open alert of a type
// @Tags         alerts
// @Produce      json
// @Param        id    path      string  true  "Order ID"
// @Param        type  path      string  true  "Alert type"
// @Success      200   {object}  response.AlertResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /orders/{id}/alerts/{type}/resolve [patch]
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	alert, err := h.usecase.Resolve(c.Request.Context(), c.Param("id"), entities.AlertType(c.Param("type")))
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlert(alert))
}

func mapAlertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidAlertType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlertNotFound):
		return pkg.NewDomainErrorSimple("ALERT_NOT_FOUND", "No open alert of this type", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
