package courses

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to courses
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	courses := r.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.GET("/", GetCourses)
		courses.GET("/:id", GetCourse)
		courses.GET("/:id/qrcode", GetCourseQRCode)
		courses.POST("/", CreateCourse)
		courses.PUT("/:id", UpdateCourse)
		courses.PUT("/:id/active", ToggleCourseActive)
		courses.DELETE("/:id", DeleteCourse)
	}
}
