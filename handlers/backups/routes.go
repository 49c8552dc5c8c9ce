package backups

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to database backups
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	backups := r.Group("/backups")
	backups.Use(middleware.AuthMiddleware())
	{
		backups.GET("/", GetBackups)
		backups.POST("/", CreateBackup)
		backups.POST("/:id/restore", RestoreBackup)
		backups.DELETE("/:id", DeleteBackup)
	}
}
