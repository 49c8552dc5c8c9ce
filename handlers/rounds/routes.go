package rounds

import (
	"fieldscore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to rounds
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Live score feed; the upgrade request cannot carry the auth header
	r.GET("/rounds/:id/ws", RoundWebSocket)

	rounds := r.Group("/rounds")
	rounds.Use(middleware.AuthMiddleware())
	{
		rounds.GET("/", GetRounds)
		rounds.GET("/stats", GetMyStats)
		rounds.GET("/:id", GetRound)
		rounds.POST("/", CreateRound)
		rounds.PUT("/:id", UpdateRound)
		rounds.DELETE("/:id", DeleteRound)

		rounds.POST("/:id/participants", AddParticipant)
		rounds.DELETE("/:id/participants/:userId", RemoveParticipant)
		rounds.DELETE("/:id/non-members/:guestId", RemoveNonMemberParticipant)

		rounds.POST("/:id/scores", AddScore)
		rounds.PUT("/:id/complete", CompleteRound)
		rounds.PUT("/:id/cancel", CancelRound)
	}
}
