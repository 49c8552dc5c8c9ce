package rounds

import (
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/services"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// GetMyStats aggregates the authenticated user's completed rounds
// @Summary Get My Stats
// @Description Round counts, personal bests and per-system averages for the current user
// @Tags Rounds
// @Success 200 {object} services.UserStats
// @Failure 401,500 {object} map[string]string
// @Router /rounds/stats [get]
// @Security Bearer
func GetMyStats(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    service := services.NewRoundService(services.NewRoundRepository(database.DB))
    stats, err := service.ComputeUserStats(user.ID)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to compute stats")
        return
    }

    c.JSON(http.StatusOK, stats)
}
