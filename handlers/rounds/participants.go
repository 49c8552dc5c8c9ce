package rounds

import (
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// AddParticipant adds a registered user by email or a guest by name
// @Summary Add Participant
// @Description Add a registered user (by email) or a guest (by name) to a round
// @Tags Rounds
// @Param id path string true "Round ID"
// @Param request body AddParticipantRequest true "Participant"
// @Success 200 {object} models.Round
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id}/participants [post]
// @Security Bearer
func AddParticipant(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req AddParticipantRequest
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
    if round.Status != models.RoundStatusActive {
        tx.Rollback()
        response.DomainError(c, models.ErrRoundNotActive)
        return
    }

    switch {
    case req.Email != "":
        var member models.User
        if err := tx.Where("email = ?", req.Email).First(&member).Error; err != nil {
            tx.Rollback()
            response.Error(c, http.StatusNotFound, ErrUserNotFound)
            return
        }
        if err := round.AddParticipant(&member, user.CanBypassVerification()); err != nil {
            tx.Rollback()
            response.DomainError(c, err)
            return
        }
    case req.Name != "":
        if _, err := round.AddNonMemberParticipant(req.Name); err != nil {
            tx.Rollback()
            response.DomainError(c, err)
            return
        }
    default:
        tx.Rollback()
        response.Error(c, http.StatusBadRequest, ErrParticipantRequired)
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

    c.JSON(http.StatusOK, round)
}

// RemoveParticipant removes a registered participant from a round
// @Summary Remove Participant
// @Description Remove a registered participant; the scorer can never be removed
// @Tags Rounds
// @Param id path string true "Round ID"
// @Param userId path string true "User ID"
// @Success 200 {object} models.Round
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id}/participants/{userId} [delete]
// @Security Bearer
func RemoveParticipant(c *gin.Context) {
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

    if err := round.RemoveParticipant(c.Param("userId")); err != nil {
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

    c.JSON(http.StatusOK, round)
}

// RemoveNonMemberParticipant removes a guest from a round
// @Summary Remove Guest
// @Description Remove a non-member guest by generated id
// @Tags Rounds
// @Param id path string true "Round ID"
// @Param guestId path string true "Guest ID"
// @Success 200 {object} models.Round
// @Failure 401,403,404 {object} map[string]string
// @Router /rounds/{id}/non-members/{guestId} [delete]
// @Security Bearer
func RemoveNonMemberParticipant(c *gin.Context) {
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

    if err := round.RemoveNonMemberParticipant(c.Param("guestId")); err != nil {
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

    c.JSON(http.StatusOK, round)
}
