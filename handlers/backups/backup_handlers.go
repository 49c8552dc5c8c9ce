package backups

import (
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/services"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// GetBackups lists all recorded database backups
// @Summary Get Backups
// @Description List database backups; site admins only
// @Tags Backups
// @Success 200 {array} models.Backup
// @Failure 401,403 {object} map[string]string
// @Router /backups [get]
// @Security Bearer
func GetBackups(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var backups []models.Backup
    if err := database.DB.Order("created_at DESC").Find(&backups).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetBackups)
        return
    }

    c.JSON(http.StatusOK, backups)
}

// CreateBackup dumps the database and records the dump
// @Summary Create Backup
// @Description Take a database dump; site admins only
// @Tags Backups
// @Success 201 {object} models.Backup
// @Failure 401,403,500 {object} map[string]string
// @Router /backups [post]
// @Security Bearer
func CreateBackup(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    filename, size, err := services.NewBackupService().CreateDump()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToCreateBackup)
        return
    }

    backup := models.Backup{
        Filename:    filename,
        SizeBytes:   size,
        CreatedByID: user.ID,
    }
    if err := database.DB.Create(&backup).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToCreateBackup)
        return
    }

    c.JSON(http.StatusCreated, backup)
}

// RestoreBackup replays a recorded dump into the database
// @Summary Restore Backup
// @Description Restore the database from a dump; site admins only
// @Tags Backups
// @Param id path string true "Backup ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /backups/{id}/restore [post]
// @Security Bearer
func RestoreBackup(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var backup models.Backup
    if err := database.DB.Where("id = ?", c.Param("id")).First(&backup).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrBackupNotFound)
        return
    }

    if err := services.NewBackupService().Restore(backup.Filename); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToRestoreBackup)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Backup restored"})
}

// DeleteBackup removes a dump file and its record
// @Summary Delete Backup
// @Description Delete a backup; site admins only
// @Tags Backups
// @Param id path string true "Backup ID"
// @Success 204
// @Failure 401,403,404,500 {object} map[string]string
// @Router /backups/{id} [delete]
// @Security Bearer
func DeleteBackup(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !user.IsAdmin() {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var backup models.Backup
    if err := database.DB.Where("id = ?", c.Param("id")).First(&backup).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrBackupNotFound)
        return
    }

    if err := services.NewBackupService().Delete(backup.Filename); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteBackup)
        return
    }

    if err := database.DB.Delete(&backup).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteBackup)
        return
    }

    c.Status(http.StatusNoContent)
}
