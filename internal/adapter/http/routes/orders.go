package routes

import (
	"cermont_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	transitionHandler *handlers.TransitionHandler,
	alertHandler *handlers.AlertHandler,
	costHandler *handlers.CostHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)

		orders.GET("/:id/state", transitionHandler.GetState)
		orders.PATCH("/:id/state", transitionHandler.PatchState)
		orders.GET("/:id/state/history", transitionHandler.GetHistory)
		orders.GET("/:id/state/verify", transitionHandler.VerifyLedger)

		orders.GET("/:id/alerts", alertHandler.ListAlerts)
		orders.PATCH("/:id/alerts/:type/read", alertHandler.MarkAlertRead)
		orders.PATCH("/:id/alerts/:type/resolve", alertHandler.ResolveAlert)

		orders.POST("/:id/costs", costHandler.AddCostEntry)
		orders.GET("/:id/costs/comparison", costHandler.GetCostComparison)

		orders.POST("/:id/payments", paymentHandler.CreatePayment)
		orders.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
