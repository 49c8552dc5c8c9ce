package courses

import (
	"errors"
	"net/http"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/services"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCourses retrieves active courses, optionally filtered by club
// @Summary Get All Courses
// @Description Get all active courses, optionally for one club
// @Tags Courses
// @Param club query string false "Club ID"
// @Success 200 {array} models.Course
// @Failure 401,404 {object} map[string]string
// @Router /courses [get]
// @Security Bearer
func GetCourses(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    query := database.DB.Preload("Club").Where("active = ?", true).Order("name")

    if clubID := c.Query("club"); clubID != "" {
        var club models.Club
        if err := database.DB.Where("id = ?", clubID).First(&club).Error; err != nil {
            response.Error(c, http.StatusNotFound, ErrClubNotFound)
            return
        }
        if !club.Approved && !user.IsAdmin() {
            response.Error(c, http.StatusNotFound, ErrClubNotFound)
            return
        }
        query = query.Where("club_id = ?", clubID)
    }

    var courses []models.Course
    if err := query.Find(&courses).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCourses)
        return
    }

    c.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a single course
// @Summary Get Course
// @Description Get a course by ID
// @Tags Courses
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 401,404 {object} map[string]string
// @Router /courses/{id} [get]
// @Security Bearer
func GetCourse(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var course models.Course
    if err := database.DB.Preload("Club").Where("id = ?", c.Param("id")).First(&course).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "course":   course,
        "maxScore": course.MaxScore(),
    })
}

// CreateCourse creates a course for a club
// @Summary Create Course
// @Description Create a course; club admins only. Course names are unique within a club.
// @Tags Courses
// @Param request body CourseRequest true "Course details"
// @Success 201 {object} models.Course
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /courses [post]
// @Security Bearer
func CreateCourse(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req CourseRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if !req.ScoringSystem.Valid() {
        response.Error(c, http.StatusBadRequest, ErrInvalidScoringSystem)
        return
    }

    var club models.Club
    if err := database.DB.Where("id = ?", req.ClubID).First(&club).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrClubNotFound)
        return
    }

    if !isClubAdmin(user, club.ID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    arrows := req.ArrowsPerTarget
    if arrows == 0 {
        arrows = 3
    }

    course := models.Course{
        Name:            req.Name,
        Description:     req.Description,
        ClubID:          club.ID,
        ScoringSystem:   req.ScoringSystem,
        Targets:         req.Targets,
        ArrowsPerTarget: arrows,
        Latitude:        req.Latitude,
        Longitude:       req.Longitude,
        CreatedByID:     user.ID,
    }

    if err := database.DB.Create(&course).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusConflict, ErrNameTakenInClub)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveCourse)
        return
    }

    c.JSON(http.StatusCreated, course)
}

// UpdateCourse updates a course's details
// @Summary Update Course
// @Description Update a course; club admins only. Scoring system and layout changes do not affect already-recorded rounds.
// @Tags Courses
// @Param id path string true "Course ID"
// @Param request body CourseRequest true "Course details"
// @Success 200 {object} models.Course
// @Failure 400,401,403,404 {object} map[string]string
// @Router /courses/{id} [put]
// @Security Bearer
func UpdateCourse(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var course models.Course
    if err := database.DB.Where("id = ?", c.Param("id")).First(&course).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return
    }

    if !isClubAdmin(user, course.ClubID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var req CourseRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if !req.ScoringSystem.Valid() {
        response.Error(c, http.StatusBadRequest, ErrInvalidScoringSystem)
        return
    }

    updates := map[string]interface{}{
        "name":              req.Name,
        "description":       req.Description,
        "scoring_system":    req.ScoringSystem,
        "targets":           req.Targets,
        "latitude":          req.Latitude,
        "longitude":         req.Longitude,
    }
    if req.ArrowsPerTarget > 0 {
        updates["arrows_per_target"] = req.ArrowsPerTarget
    }

    if err := database.DB.Model(&course).Updates(updates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveCourse)
        return
    }

    c.JSON(http.StatusOK, course)
}

// ToggleCourseActive activates or deactivates a course
// @Summary Toggle Course Active
// @Description Deactivated courses are hidden from listings but keep their rounds
// @Tags Courses
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 401,403,404 {object} map[string]string
// @Router /courses/{id}/active [put]
// @Security Bearer
func ToggleCourseActive(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var course models.Course
    if err := database.DB.Where("id = ?", c.Param("id")).First(&course).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return
    }

    if !isClubAdmin(user, course.ClubID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    if err := database.DB.Model(&course).Update("active", !course.Active).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveCourse)
        return
    }

    course.Active = !course.Active
    c.JSON(http.StatusOK, course)
}

// DeleteCourse deletes a course
// @Summary Delete Course
// @Description Delete a course; club admins only
// @Tags Courses
// @Param id path string true "Course ID"
// @Success 204
// @Failure 401,403,404 {object} map[string]string
// @Router /courses/{id} [delete]
// @Security Bearer
func DeleteCourse(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var course models.Course
    if err := database.DB.Where("id = ?", c.Param("id")).First(&course).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return
    }

    if !isClubAdmin(user, course.ClubID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    if err := database.DB.Delete(&course).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteCourse)
        return
    }

    c.Status(http.StatusNoContent)
}

// GetCourseQRCode returns the course's check-in QR code as a PNG
// @Summary Get Course QR Code
// @Description PNG QR code linking to the course check-in page
// @Tags Courses
// @Param id path string true "Course ID"
// @Produce png
// @Success 200 {file} byte
// @Failure 401,404,500 {object} map[string]string
// @Router /courses/{id}/qrcode [get]
// @Security Bearer
func GetCourseQRCode(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var course models.Course
    if err := database.DB.Where("id = ?", c.Param("id")).First(&course).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return
    }

    png, err := services.NewQRCodeService().CourseCheckInPNG(course.ID)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to generate QR code")
        return
    }

    c.Data(http.StatusOK, "image/png", png)
}

// isClubAdmin reports whether the user administers the club
func isClubAdmin(user *models.User, clubID string) bool {
    if user.IsAdmin() {
        return true
    }
    var count int64
    database.DB.Table("club_admins").Where("user_id = ? AND club_id = ?", user.ID, clubID).Count(&count)
    return count > 0
}
