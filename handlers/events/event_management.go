package events

import (
	"net/http"
	"time"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
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

// GetEvents retrieves events, optionally filtered by club or upcoming only
// @Summary Get All Events
// @Description Get events, filterable by club and by upcoming
// @Tags Events
// @Param club query string false "Club ID"
// @Param upcoming query bool false "Only events that have not ended"
// @Success 200 {array} models.Event
// @Failure 401 {object} map[string]string
// @Router /events [get]
// @Security Bearer
func GetEvents(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    query := database.DB.Preload("Club").Preload("Courses").Order("start_date")

    if clubID := c.Query("club"); clubID != "" {
        query = query.Where("club_id = ?", clubID)
    }
    if c.Query("upcoming") == "true" {
        query = query.Where("end_date >= ?", time.Now())
    }

    var events []models.Event
    if err := query.Find(&events).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetEvents)
        return
    }

    c.JSON(http.StatusOK, events)
}

// GetEvent retrieves a single event with its rounds and participants
// @Summary Get Event
// @Description Get an event by ID with courses, participants and linked rounds
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 401,404 {object} map[string]string
// @Router /events/{id} [get]
// @Security Bearer
func GetEvent(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var event models.Event
    if err := database.DB.
        Preload("Club").
        Preload("Courses").
        Preload("Participants").
        Preload("Rounds").
        Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrEventNotFound)
        return
    }

    for i := range event.Participants {
        event.Participants[i].Password = ""
    }

    c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event for a club
// @Summary Create Event
// @Description Create an event; club admins only
// @Tags Events
// @Param request body EventRequest true "Event details"
// @Success 201 {object} models.Event
// @Failure 400,401,403,404 {object} map[string]string
// @Router /events [post]
// @Security Bearer
func CreateEvent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req EventRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if req.EndDate.Before(req.StartDate) {
        response.Error(c, http.StatusBadRequest, ErrInvalidDates)
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

    courses, ok := resolveCourses(c, req.CourseIDs, club.ID)
    if !ok {
        return
    }

    event := models.Event{
        Name:        req.Name,
        Description: req.Description,
        ClubID:      club.ID,
        StartDate:   req.StartDate,
        EndDate:     req.EndDate,
        Courses:     courses,
        CreatedByID: user.ID,
    }

    if err := database.DB.Create(&event).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
        return
    }

    c.JSON(http.StatusCreated, event)
}

// UpdateEvent updates an event's details
// @Summary Update Event
// @Description Update an event; club admins only
// @Tags Events
// @Param id path string true "Event ID"
// @Param request body EventRequest true "Event details"
// @Success 200 {object} models.Event
// @Failure 400,401,403,404 {object} map[string]string
// @Router /events/{id} [put]
// @Security Bearer
func UpdateEvent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var event models.Event
    if err := database.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrEventNotFound)
        return
    }

    if !isClubAdmin(user, event.ClubID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    var req EventRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if req.EndDate.Before(req.StartDate) {
        response.Error(c, http.StatusBadRequest, ErrInvalidDates)
        return
    }

    courses, ok := resolveCourses(c, req.CourseIDs, event.ClubID)
    if !ok {
        return
    }

    updates := map[string]interface{}{
        "name":        req.Name,
        "description": req.Description,
        "start_date":  req.StartDate,
        "end_date":    req.EndDate,
    }

    if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
        return
    }

    if req.CourseIDs != nil {
        if err := database.DB.Model(&event).Association("Courses").Replace(courses); err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
            return
        }
    }

    c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event and detaches its rounds
// @Summary Delete Event
// @Description Delete an event; its rounds survive but lose the event link
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 401,403,404 {object} map[string]string
// @Router /events/{id} [delete]
// @Security Bearer
func DeleteEvent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var event models.Event
    if err := database.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrEventNotFound)
        return
    }

    if !isClubAdmin(user, event.ClubID) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    tx := database.DB.Begin()
    defer func() {
        if r := recover(); r != nil {
            tx.Rollback()
        }
    }()

    if err := tx.Model(&models.Round{}).Where("event_id = ?", event.ID).Update("event_id", nil).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteEvent)
        return
    }

    if err := tx.Model(&event).Association("Courses").Clear(); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteEvent)
        return
    }
    if err := tx.Model(&event).Association("Participants").Clear(); err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteEvent)
        return
    }

    if err := tx.Delete(&event).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteEvent)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to commit transaction")
        return
    }

    c.Status(http.StatusNoContent)
}

// RegisterForEvent registers the current user as an event participant
// @Summary Register For Event
// @Description Register the authenticated user for an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,404 {object} map[string]string
// @Router /events/{id}/register [post]
// @Security Bearer
func RegisterForEvent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var event models.Event
    if err := database.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrEventNotFound)
        return
    }

    var count int64
    database.DB.Table("event_participants").Where("user_id = ? AND event_id = ?", user.ID, event.ID).Count(&count)
    if count > 0 {
        response.Error(c, http.StatusBadRequest, ErrAlreadyRegistered)
        return
    }

    if err := database.DB.Model(&event).Association("Participants").Append(user); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Registered for event"})
}

// UnregisterFromEvent removes the current user from an event's participants
// @Summary Unregister From Event
// @Description Unregister the authenticated user from an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,404 {object} map[string]string
// @Router /events/{id}/register [delete]
// @Security Bearer
func UnregisterFromEvent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var event models.Event
    if err := database.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrEventNotFound)
        return
    }

    var count int64
    database.DB.Table("event_participants").Where("user_id = ? AND event_id = ?", user.ID, event.ID).Count(&count)
    if count == 0 {
        response.Error(c, http.StatusBadRequest, ErrNotRegistered)
        return
    }

    if err := database.DB.Model(&event).Association("Participants").Delete(user); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Unregistered from event"})
}

// resolveCourses loads the requested courses and checks they belong to the club.
// Writes the error response itself when something is off.
func resolveCourses(c *gin.Context, ids []string, clubID string) ([]*models.Course, bool) {
    if len(ids) == 0 {
        return nil, true
    }

    var courses []*models.Course
    if err := database.DB.Where("id IN ? AND club_id = ?", ids, clubID).Find(&courses).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveEvent)
        return nil, false
    }
    if len(courses) != len(ids) {
        response.Error(c, http.StatusNotFound, ErrCourseNotFound)
        return nil, false
    }
    return courses, true
}
