package clubs

import (
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// JoinClub adds the current user to a club's members
// @Summary Join Club
// @Description Join an approved club
// @Tags Clubs
// @Param id path string true "Club ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,404 {object} map[string]string
// @Router /clubs/{id}/join [post]
// @Security Bearer
func JoinClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    if !club.Approved && !user.IsAdmin() {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    var count int64
    database.DB.Table("user_clubs").Where("user_id = ? AND club_id = ?", user.ID, club.ID).Count(&count)
    if count > 0 {
        response.Error(c, http.StatusBadRequest, ErrAlreadyMember)
        return
    }

    if err := database.DB.Model(&club).Association("Members").Append(user); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    middleware.InvalidateUserCache(c, user.ID)
    c.JSON(http.StatusOK, gin.H{"message": "Joined club"})
}

// LeaveClub removes the current user from a club's members
// @Summary Leave Club
// @Description Leave a club; clears the home club if it pointed here
// @Tags Clubs
// @Param id path string true "Club ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,404 {object} map[string]string
// @Router /clubs/{id}/leave [post]
// @Security Bearer
func LeaveClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    var count int64
    database.DB.Table("user_clubs").Where("user_id = ? AND club_id = ?", user.ID, club.ID).Count(&count)
    if count == 0 {
        response.Error(c, http.StatusBadRequest, ErrNotMember)
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    if err := tx.Model(&club).Association("Members").Delete(user); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    if user.HomeClubID != nil && *user.HomeClubID == club.ID {
        if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("home_club_id", nil).Error; err != nil {
            tx.Rollback()
            response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
            return
        }
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    middleware.InvalidateUserCache(c, user.ID)
    c.JSON(http.StatusOK, gin.H{"message": "Left club"})
}

// AddClubAdmin promotes a member to club admin
// @Summary Add Club Admin
// @Description Make a club member an admin of the club
// @Tags Clubs
// @Param id path string true "Club ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404 {object} map[string]string
// @Router /clubs/{id}/admins/{userId} [post]
// @Security Bearer
func AddClubAdmin(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    if !isClubAdmin(user, club.ID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var target models.User
    if err := database.DB.Where("id = ?", c.Param("userId")).First(&target).Error; err != nil {
        response.Error(c, http.StatusNotFound, "User not found")
        return
    }

    var count int64
    database.DB.Table("user_clubs").Where("user_id = ? AND club_id = ?", target.ID, club.ID).Count(&count)
    if count == 0 {
        response.Error(c, http.StatusBadRequest, ErrNotMember)
        return
    }

    if err := database.DB.Model(&club).Association("Admins").Append(&target); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Club admin added"})
}
