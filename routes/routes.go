package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Public auth + profile routes
	SetupUserRoutes(api, db)

	// Shopping cart (JWT‐protected)
	SetupCartRoutes(api, db)

	// Orders (JWT‐protected)
	SetupOrderRoutes(api, db)

	// Product catalog
	SetupProductRoutes(api, db)

	// Shipment tracking
	SetupShipmentRoutes(api, db)
}
