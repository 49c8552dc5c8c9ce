package users

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", GetProfile)
		users.PUT("/me", UpdateProfile)
		users.PUT("/me/password", UpdatePassword)
		users.PUT("/me/home-club", SetHomeClub)
		users.POST("/me/children", CreateChild)
		users.GET("/me/qrcode", GetMyQRCode)

		users.GET("/", GetUsers)
		users.GET("/:id", GetUser)
		users.DELETE("/:id", DeleteUser)
		users.PUT("/:id/role", UpdateUserRole)
		users.PUT("/:id/verify", ToggleVerifyUser)
	}
}
