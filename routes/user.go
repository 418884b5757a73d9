package routes

import (
	userControllers "github.com/agroconnect/agroconnect-api/controllers/user"
	"github.com/agroconnect/agroconnect-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("/register", userControllers.Register(db)) // POST /api/users/register
		users.POST("/login", userControllers.Login(db))       // POST /api/users/login
	}

	protected := users.Group("")
	protected.Use(middleware.ValidateToken)
	{
		protected.GET("/profile", userControllers.GetProfile(db))              // GET /api/users/profile
		protected.PATCH("/profile", userControllers.UpdateProfile(db))         // PATCH /api/users/profile
		protected.POST("/change-password", userControllers.ChangePassword(db)) // POST /api/users/change-password
	}
}
