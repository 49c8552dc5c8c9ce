package users

import (
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/services"
	"fieldscore/utils"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile with clubs and children
// @Summary Get Profile
// @Description Get the current user's profile
// @Tags Users
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
// @Security Bearer
func GetProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var profile models.User
    if err := database.DB.Preload("Clubs").Where("id = ?", user.ID).First(&profile).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    var children []models.User
    database.DB.Where("parent_id = ?", user.ID).Find(&children)
    for i := range children {
        children[i].Password = ""
    }

    profile.Password = ""
    c.JSON(http.StatusOK, gin.H{"user": profile, "children": children})
}

// UpdateProfile updates the current user's own profile fields
// @Summary Update Profile
// @Description Update name and profile picture of the current user
// @Tags Users
// @Param request body ProfileUpdate true "Profile changes"
// @Success 200 {object} models.User
// @Failure 400,401 {object} map[string]string
// @Router /users/me [put]
// @Security Bearer
func UpdateProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req ProfileUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    updates := map[string]interface{}{}
    if req.Name != "" {
        updates["name"] = req.Name
    }
    if req.ProfilePicture != nil {
        updates["profile_picture"] = req.ProfilePicture
    }

    if len(updates) > 0 {
        if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
            return
        }
        middleware.InvalidateUserCache(c, user.ID)
    }

    var updated models.User
    database.DB.Where("id = ?", user.ID).First(&updated)
    updated.Password = ""
    c.JSON(http.StatusOK, updated)
}

// UpdatePassword changes the current user's password
// @Summary Update Password
// @Description Change the current user's password after checking the old one
// @Tags Users
// @Param request body PasswordUpdate true "Password change"
// @Success 200 {object} map[string]string
// @Failure 400,401 {object} map[string]string
// @Router /users/me/password [put]
// @Security Bearer
func UpdatePassword(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req PasswordUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var current models.User
    if err := database.DB.Where("id = ?", user.ID).First(&current).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    if !utils.CheckPassword(req.CurrentPassword, current.Password) {
        response.Error(c, http.StatusBadRequest, ErrWrongPassword)
        return
    }

    hashed, err := utils.HashPassword(req.NewPassword)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
        return
    }

    if err := database.DB.Model(&current).Update("password", hashed).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
        return
    }

    middleware.InvalidateUserCache(c, user.ID)
    c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// SetHomeClub sets or clears the current user's home club
// @Summary Set Home Club
// @Description Set the current user's home club; must be a member of the club
// @Tags Users
// @Param request body HomeClubUpdate true "Home club"
// @Success 200 {object} models.User
// @Failure 400,401,404 {object} map[string]string
// @Router /users/me/home-club [put]
// @Security Bearer
func SetHomeClub(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req HomeClubUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if req.ClubID != nil {
        var club models.Club
        if err := database.DB.Where("id = ?", *req.ClubID).First(&club).Error; err != nil {
            response.Error(c, http.StatusNotFound, ErrClubNotFound)
            return
        }

        var count int64
        database.DB.Table("user_clubs").Where("user_id = ? AND club_id = ?", user.ID, club.ID).Count(&count)
        if count == 0 {
            response.Error(c, http.StatusBadRequest, ErrNotClubMember)
            return
        }
    }

    if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("home_club_id", req.ClubID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
        return
    }

    middleware.InvalidateUserCache(c, user.ID)

    var updated models.User
    database.DB.Where("id = ?", user.ID).First(&updated)
    updated.Password = ""
    c.JSON(http.StatusOK, updated)
}

// CreateChild creates a child account linked to the current user
// @Summary Create Child Account
// @Description Create a child account managed by the current user
// @Tags Users
// @Param request body ChildRequest true "Child details"
// @Success 201 {object} models.User
// @Failure 400,401 {object} map[string]string
// @Router /users/me/children [post]
// @Security Bearer
func CreateChild(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req ChildRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    password, err := utils.CreateDefaultPassword()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
        return
    }

    child := models.User{
        Name:     req.Name,
        Email:    user.ID + "+" + req.Name + "@child.local",
        Password: password,
        Role:     models.RoleUser,
        Verified: true,
        IsChild:  true,
        ParentID: &user.ID,
    }

    if err := database.DB.Create(&child).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to create child account")
        return
    }

    child.Password = ""
    c.JSON(http.StatusCreated, child)
}

// GetMyQRCode returns the current user's check-in QR code as a PNG
// @Summary Get My QR Code
// @Description PNG QR code used for event check-in
// @Tags Users
// @Produce png
// @Success 200 {file} byte
// @Failure 401,500 {object} map[string]string
// @Router /users/me/qrcode [get]
// @Security Bearer
func GetMyQRCode(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    png, err := services.NewQRCodeService().UserCheckInPNG(user.ID)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to generate QR code")
        return
    }

    c.Data(http.StatusOK, "image/png", png)
}
