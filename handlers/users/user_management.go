package users

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

var validRoles = map[string]bool{
	models.RoleUser:      true,
	models.RoleClubAdmin: true,
	models.RoleAdmin:     true,
	models.RoleSuperUser: true,
}

// GetUsers retrieves all users visible to the authenticated user
// @Summary Get All Users
// @Description Admins see every user; club admins see members of their clubs
// @Tags Users
// @Success 200 {array} models.User
// @Failure 401,403 {object} map[string]string
// @Router /users [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var users []models.User

    if user.IsAdmin() {
        if err := database.DB.Preload("Clubs").Find(&users).Error; err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
            return
        }
    } else if user.Role == models.RoleClubAdmin {
        if err := getUsersInSameClubs(user.ID, &users); err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
            return
        }
    } else {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    for i := range users {
        users[i].Password = ""
    }

    c.JSON(http.StatusOK, users)
}

// getUsersInSameClubs retrieves all users sharing at least one club with the user
func getUsersInSameClubs(userID string, users *[]models.User) error {
    var userIDs []string
    if err := database.DB.Raw(`
        SELECT DISTINCT u.id
        FROM users u
        JOIN user_clubs uc ON u.id = uc.user_id
        JOIN user_clubs auc ON uc.club_id = auc.club_id
        WHERE auc.user_id = ?
    `, userID).Pluck("id", &userIDs).Error; err != nil {
        return err
    }

    if len(userIDs) == 0 {
        *users = []models.User{}
        return nil
    }

    return database.DB.Preload("Clubs").Where("id IN ?", userIDs).Find(users).Error
}

// GetUser retrieves a single user by ID
// @Summary Get User
// @Description Get a user by ID; admins only
// @Tags Users
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 401,403,404 {object} map[string]string
// @Router /users/{id} [get]
// @Security Bearer
func GetUser(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    targetID := c.Param("id")
    if !user.IsAdmin() && user.ID != targetID {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var target models.User
    if err := database.DB.Preload("Clubs").Where("id = ?", targetID).First(&target).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    target.Password = ""
    c.JSON(http.StatusOK, target)
}

// DeleteUser deletes a user by ID
// @Summary Delete User
// @Description Delete a user by ID; admins only
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 401,403,404 {object} map[string]string
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var target models.User
    if err := database.DB.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            response.Error(c, http.StatusNotFound, ErrUserNotFound)
        } else {
            response.Error(c, http.StatusInternalServerError, "Database error when finding user")
        }
        return
    }

    // Only a super user may delete admins
    if target.IsAdmin() && user.Role != models.RoleSuperUser {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    if err := tx.Model(&target).Association("Clubs").Clear(); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
        return
    }

    if err := tx.Delete(&target).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    middleware.InvalidateUserCache(c, target.ID)
    c.Status(http.StatusNoContent)
}

// UpdateUserRole changes a user's role
// @Summary Update User Role
// @Description Change a user's role; admins only, super user required to grant admin roles
// @Tags Users
// @Param id path string true "User ID"
// @Param request body RoleUpdate true "New role"
// @Success 200 {object} models.User
// @Failure 400,401,403,404 {object} map[string]string
// @Router /users/{id}/role [put]
// @Security Bearer
func UpdateUserRole(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var req RoleUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if !validRoles[req.Role] {
        response.Error(c, http.StatusBadRequest, ErrInvalidRole)
        return
    }

    // Granting site-wide admin roles requires the super user
    if (req.Role == models.RoleAdmin || req.Role == models.RoleSuperUser) && user.Role != models.RoleSuperUser {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var target models.User
    if err := database.DB.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    if err := database.DB.Model(&target).Update("role", req.Role).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
        return
    }

    middleware.InvalidateUserCache(c, target.ID)
    target.Password = ""
    c.JSON(http.StatusOK, target)
}

// ToggleVerifyUser toggles the verified flag of a user
// @Summary Toggle Verified
// @Description Toggle a user's verified status; admins and club admins
// @Tags Users
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 401,403,404 {object} map[string]string
// @Router /users/{id}/verify [put]
// @Security Bearer
func ToggleVerifyUser(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    if !user.CanBypassVerification() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var target models.User
    if err := database.DB.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    if err := database.DB.Model(&target).Update("verified", !target.Verified).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
        return
    }

    middleware.InvalidateUserCache(c, target.ID)
    target.Verified = !target.Verified
    target.Password = ""
    c.JSON(http.StatusOK, target)
}
