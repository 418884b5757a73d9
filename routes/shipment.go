package routes

import (
	shipmentControllers "github.com/agroconnect/agroconnect-api/controllers/shipment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupShipmentRoutes(api *gin.RouterGroup, db *gorm.DB) {
	shipments := api.Group("/shipments")
	{
		shipments.GET("", shipmentControllers.ListShipments(db))
		shipments.POST("/create", shipmentControllers.CreateShipment(db))
		shipments.GET("/track/:tracking_number", shipmentControllers.TrackShipment(db))
		shipments.PATCH("/update-status/:tracking_number", shipmentControllers.UpdateShipmentStatus(db))
	}
}
