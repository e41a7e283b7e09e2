package routes

import (
	"liquidation_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathLiquidations = "/liquidations"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.List)
		customers.GET("/search", h.Search)
		customers.GET("/:id", h.GetByID)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func addLiquidationRoutes(rg *gin.RouterGroup, h *handlers.LiquidationHandler) {
	liquidations := rg.Group(PathLiquidations)
	{
		liquidations.GET("", h.List)
		liquidations.GET("/customer/:customerId", h.ListByCustomer)
		liquidations.GET("/:id", h.GetByID)
		liquidations.POST("", h.Create)
		liquidations.PUT("/:id", h.Update)
		liquidations.PUT("/:id/pay", h.Pay)
		liquidations.DELETE("/:id", h.Delete)
		liquidations.GET("/:id/penalty", h.Penalty)
		liquidations.GET("/:id/payment-reference", h.PaymentReference)
		liquidations.GET("/:id/qrcode", h.QRCode)
	}
}
