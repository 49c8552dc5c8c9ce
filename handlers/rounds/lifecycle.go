package rounds

import (
	"log"
	"net/http"

	"fieldscore/database"
	"fieldscore/metrics"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/realtime"
	"fieldscore/services"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CompleteRound finalizes a round: totals are recomputed, personal bests are
// evaluated for every registered participant, and watchers are notified.
// @Summary Complete Round
// @Description Complete an active round and evaluate personal bests
// @Tags Rounds
// @Param id path string true "Round ID"
// @Success 200 {object} models.Round
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id}/complete [put]
// @Security Bearer
func CompleteRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    var round models.Round
    if err := lockForUpdate(tx).Where("id = ?", c.Param("id")).First(&round).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusNotFound, ErrRoundNotFound)
        return
    }

    if !canScoreRound(user, &round) {
        tx.Rollback()
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    if err := round.Complete(); err != nil {
        tx.Rollback()
        response.DomainError(c, err)
        return
    }

    service := services.NewRoundService(services.NewRoundRepository(tx))
    if _, err := service.EvaluatePersonalBests(&round); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveRound)
        return
    }

    if err := tx.Save(&round).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveRound)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    metrics.RoundsCompleted.WithLabelValues(string(round.ScoringSystem)).Inc()

    realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
        RoundID:    round.ID,
        UpdateType: "completed",
    })

    c.JSON(http.StatusOK, round)
}

// CancelRound cancels an active round; its scores are kept but excluded from
// statistics and personal bests.
// @Summary Cancel Round
// @Description Cancel an active round; cancelled rounds never count toward stats
// @Tags Rounds
// @Param id path string true "Round ID"
// @Success 200 {object} models.Round
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id}/cancel [put]
// @Security Bearer
func CancelRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    var round models.Round
    if err := lockForUpdate(tx).Where("id = ?", c.Param("id")).First(&round).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusNotFound, ErrRoundNotFound)
        return
    }

    if !canScoreRound(user, &round) {
        tx.Rollback()
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    if err := round.Cancel(); err != nil {
        tx.Rollback()
        response.DomainError(c, err)
        return
    }

    if err := tx.Save(&round).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveRound)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
        RoundID:    round.ID,
        UpdateType: "cancelled",
    })

    c.JSON(http.StatusOK, round)
}

// RoundWebSocket handles WebSocket connections for a specific round's live
// score feed. The connection is read-only; updates flow server to client.
func RoundWebSocket(c *gin.Context) {
    roundID := c.Param("id")

    var count int64
    database.DB.Model(&models.Round{}).Where("id = ?", roundID).Count(&count)
    if count == 0 {
        c.JSON(http.StatusNotFound, gin.H{"error": ErrRoundNotFound})
        return
    }

    conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
        log.Printf("WebSocket upgrade error: %v", err)
        return
    }

    realtime.RegisterClient(roundID, conn)
    defer func() {
        realtime.UnregisterClient(roundID, conn)
        conn.Close()
    }()

    // Keep the connection open until the client goes away
    for {
        if _, _, err := conn.ReadMessage(); err != nil {
            break
        }
    }
}
