package routes

import (
	productControllers "github.com/agroconnect/agroconnect-api/controllers/product"
	"github.com/agroconnect/agroconnect-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		// Back-office export, API-key protected
		products.GET("/export", middleware.ValidateAPIKey, productControllers.ExportProductsToExcel(db))

		products.GET("", productControllers.GetProducts(db))        // GET /api/products
		products.GET("/:id", productControllers.GetProductByID(db)) // GET /api/products/:id
	}
}
