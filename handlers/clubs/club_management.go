package clubs

import (
	"errors"
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// isClubAdmin reports whether the user administers the club
func isClubAdmin(user *models.User, clubID string) bool {
    if user.IsAdmin() {
        return true
    }
    var count int64
    database.DB.Table("club_admins").Where("user_id = ? AND club_id = ?", user.ID, clubID).Count(&count)
    return count > 0
}

// GetClubs retrieves all clubs visible to the authenticated user
// @Summary Get All Clubs
// @Description Approved clubs for everyone; unapproved ones only for admins
// @Tags Clubs
// @Success 200 {array} models.Club
// @Failure 401 {object} map[string]string
// @Router /clubs [get]
// @Security Bearer
func GetClubs(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    query := database.DB.Order("name")
    if !user.IsAdmin() {
        query = query.Where("approved = ?", true)
    }

    var clubs []models.Club
    if err := query.Find(&clubs).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetClubs)
        return
    }

    c.JSON(http.StatusOK, clubs)
}

// GetClub retrieves a single club with its members
// @Summary Get Club
// @Description Get a club by ID with members and admins
// @Tags Clubs
// @Param id path string true "Club ID"
// @Success 200 {object} models.Club
// @Failure 401,404 {object} map[string]string
// @Router /clubs/{id} [get]
// @Security Bearer
func GetClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var club models.Club
    if err := database.DB.Preload("Members").Preload("Admins").Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    if !club.Approved && !user.IsAdmin() {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    for i := range club.Members {
        club.Members[i].Password = ""
    }
    for i := range club.Admins {
        club.Admins[i].Password = ""
    }

    c.JSON(http.StatusOK, club)
}

// CreateClub creates a new club pending approval
// @Summary Create Club
// @Description Create a club; it stays hidden until an admin approves it
// @Tags Clubs
// @Param request body ClubRequest true "Club details"
// @Success 201 {object} models.Club
// @Failure 400,401,409 {object} map[string]string
// @Router /clubs [post]
// @Security Bearer
func CreateClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req ClubRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    club := models.Club{
        Name:         req.Name,
        Description:  req.Description,
        Address:      req.Address,
        City:         req.City,
        State:        req.State,
        Country:      req.Country,
        ContactEmail: req.ContactEmail,
        ContactPhone: req.ContactPhone,
        Website:      req.Website,
        Approved:     user.IsAdmin(), // clubs created by admins skip the approval queue
        CreatedByID:  user.ID,
        Members:      []*models.User{user},
        Admins:       []*models.User{user},
    }

    if err := database.DB.Create(&club).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusConflict, ErrNameTaken)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    c.JSON(http.StatusCreated, club)
}

// UpdateClub updates a club's details
// @Summary Update Club
// @Description Update a club; club admins only
// @Tags Clubs
// @Param id path string true "Club ID"
// @Param request body ClubRequest true "Club details"
// @Success 200 {object} models.Club
// @Failure 400,401,403,404 {object} map[string]string
// @Router /clubs/{id} [put]
// @Security Bearer
func UpdateClub(c *gin.Context) {
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

    var req ClubRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    updates := map[string]interface{}{
        "name":          req.Name,
        "description":   req.Description,
        "address":       req.Address,
        "city":          req.City,
        "state":         req.State,
        "country":       req.Country,
        "contact_email": req.ContactEmail,
        "contact_phone": req.ContactPhone,
        "website":       req.Website,
    }

    if err := database.DB.Model(&club).Updates(updates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    c.JSON(http.StatusOK, club)
}

// ApproveClub marks a club approved
// @Summary Approve Club
// @Description Approve a pending club; site admins only
// @Tags Clubs
// @Param id path string true "Club ID"
// @Success 200 {object} models.Club
// @Failure 401,403,404 {object} map[string]string
// @Router /clubs/{id}/approve [put]
// @Security Bearer
func ApproveClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    if err := database.DB.Model(&club).Update("approved", true).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveClub)
        return
    }

    club.Approved = true
    c.JSON(http.StatusOK, club)
}

// DeleteClub deletes a club
// @Summary Delete Club
// @Description Delete a club; site admins only
// @Tags Clubs
// @Param id path string true "Club ID"
// @Success 204
// @Failure 401,403,404 {object} map[string]string
// @Router /clubs/{id} [delete]
// @Security Bearer
func DeleteClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    if err := tx.Model(&club).Association("Members").Clear(); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteClub)
        return
    }
    if err := tx.Model(&club).Association("Admins").Clear(); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteClub)
        return
    }

    if err := tx.Delete(&club).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteClub)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    c.Status(http.StatusNoContent)
}
