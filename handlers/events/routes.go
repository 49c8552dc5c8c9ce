package events

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to events
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware())
	{
		events.GET("/", GetEvents)
		events.GET("/:id", GetEvent)
		events.POST("/", CreateEvent)
		events.PUT("/:id", UpdateEvent)
		events.DELETE("/:id", DeleteEvent)

		events.POST("/:id/register", RegisterForEvent)
		events.DELETE("/:id/register", UnregisterFromEvent)
	}
}
