package clubs

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to clubs
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	clubs := r.Group("/clubs")
	clubs.Use(middleware.AuthMiddleware())
	{
		clubs.GET("/", GetClubs)
		clubs.GET("/:id", GetClub)
		clubs.POST("/", CreateClub)
		clubs.PUT("/:id", UpdateClub)
		clubs.PUT("/:id/approve", ApproveClub)
		clubs.DELETE("/:id", DeleteClub)

		clubs.POST("/:id/join", JoinClub)
		clubs.POST("/:id/leave", LeaveClub)
		clubs.POST("/:id/admins/:userId", AddClubAdmin)
	}
}
