package routes

import (
	orderControllers "github.com/agroconnect/agroconnect-api/controllers/order"
	"github.com/agroconnect/agroconnect-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")

	// websocket endpoint for real-time order updates
	orders.GET("/ws", orderControllers.OrderWebSocketHandler)

	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the caller's cart
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("", orderControllers.ListOrdersHandler(db))

		// Fetch a specific order
		orders.GET("/:order_id", orderControllers.GetOrderHandler(db))
	}
}
