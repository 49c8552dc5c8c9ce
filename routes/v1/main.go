package v1

import (
	"fieldscore/handlers/auth"
	"fieldscore/handlers/backups"
	"fieldscore/handlers/clubs"
	"fieldscore/handlers/courses"
	"fieldscore/handlers/events"
	"fieldscore/handlers/rounds"
	"fieldscore/handlers/users"
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
    v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
    v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterSupportRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	clubs.RegisterRoutes(v1)
	courses.RegisterRoutes(v1)
	events.RegisterRoutes(v1)
	rounds.RegisterRoutes(v1)
	backups.RegisterRoutes(v1)

	v1.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
