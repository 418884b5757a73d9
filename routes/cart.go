package routes

import (
	cartControllers "github.com/agroconnect/agroconnect-api/controllers/cart"
	"github.com/agroconnect/agroconnect-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))                                // GET /api/cart
		cart.POST("/add", cartControllers.AddToCart(db))                         // POST /api/cart/add
		cart.DELETE("/remove/:product_name", cartControllers.RemoveFromCart(db)) // DELETE /api/cart/remove/:product_name
		cart.PUT("/update/:product_name", cartControllers.UpdateCartItem(db))    // PUT /api/cart/update/:product_name
		cart.DELETE("/clear", cartControllers.ClearCart(db))                     // DELETE /api/cart/clear
	}
}
