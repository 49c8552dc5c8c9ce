package rounds

import (
	"net/http"

	"fieldscore/config"
	"fieldscore/database"
	"fieldscore/metrics"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/realtime"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// AddScore records all arrows shot at one target by one participant. Scoring a
// target twice replaces the earlier entry. The round row is locked for the
// write so concurrent score submissions serialize per round.
// @Summary Add Score
// @Description Score one target for one participant; re-scoring a target replaces it
// @Tags Rounds
// @Param id path string true "Round ID"
// @Param request body ScoreRequest true "Target score"
// @Success 200 {object} models.TargetScore
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id}/scores [post]
// @Security Bearer
func AddScore(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req ScoreRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    var round models.Round
    if err := lockForUpdate(tx).
        Preload("Course").
        Where("id = ?", c.Param("id")).First(&round).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusNotFound, ErrRoundNotFound)
        return
    }

    if !canScoreRound(user, &round) {
        tx.Rollback()
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    ref := models.ParticipantRef{ID: req.ParticipantID, NonMember: req.NonMember}
    score, err := round.AddOrReplaceScore(ref, req.TargetNumber, req.Arrows, config.ScoringRules.ABATable)
    if err != nil {
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

    metrics.ScoresRecorded.WithLabelValues(string(round.ScoringSystem)).Inc()

    total := 0
    if req.NonMember {
        if guest := round.FindNonMember(req.ParticipantID); guest != nil {
            total = guest.TotalScore
        }
    } else {
        if participant := round.FindParticipant(req.ParticipantID); participant != nil {
            total = participant.TotalScore
        }
    }

    realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
        RoundID:       round.ID,
        ParticipantID: req.ParticipantID,
        NonMember:     req.NonMember,
        TargetScore:   score,
        TotalScore:    total,
        UpdateType:    "score",
    })

    c.JSON(http.StatusOK, gin.H{
        "score":      score,
        "totalScore": total,
    })
}
