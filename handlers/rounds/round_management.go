package rounds

import (
	"net/http"
	"strconv"
	"time"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// canViewRound reports whether the user may read the round: admins see all,
// everyone else only rounds they score or shoot in.
func canViewRound(user *models.User, round *models.Round) bool {
    if user.IsAdmin() {
        return true
    }
    if round.ScorerID == user.ID {
        return true
    }
    return round.FindParticipant(user.ID) != nil
}

// canScoreRound reports whether the user may mutate the round's scores and
// participant list. Only the scorer and admins can.
func canScoreRound(user *models.User, round *models.Round) bool {
    return user.IsAdmin() || round.ScorerID == user.ID
}

// GetRounds retrieves rounds visible to the user, with optional filters
// @Summary Get All Rounds
// @Description List rounds; non-admins only see rounds they score or shoot in
// @Tags Rounds
// @Param club query string false "Club ID"
// @Param course query string false "Course ID"
// @Param scoringSystem query string false "ABA or IFAA"
// @Param status query string false "active, completed or cancelled"
// @Param date query string false "Rounds on this day (RFC 3339 date)"
// @Param startDate query string false "Rounds on or after this day"
// @Param endDate query string false "Rounds on or before this day"
// @Param limit query int false "Maximum number of rounds returned"
// @Success 200 {array} models.Round
// @Failure 400,401 {object} map[string]string
// @Router /rounds [get]
// @Security Bearer
func GetRounds(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    query := database.DB.
        Preload("Course").
        Preload("Club").
        Preload("Scorer").
        Order("date DESC")

    if !user.IsAdmin() {
        filter := `[{"user": "` + user.ID + `"}]`
        query = query.Where("scorer_id = ? OR participants @> ?", user.ID, filter)
    }

    if clubID := c.Query("club"); clubID != "" {
        query = query.Where("club_id = ?", clubID)
    }
    if courseID := c.Query("course"); courseID != "" {
        query = query.Where("course_id = ?", courseID)
    }
    if system := c.Query("scoringSystem"); system != "" {
        query = query.Where("scoring_system = ?", system)
    }
    if status := c.Query("status"); status != "" {
        query = query.Where("status = ?", status)
    }

    if day := c.Query("date"); day != "" {
        start, err := time.Parse("2006-01-02", day)
        if err != nil {
            response.Error(c, http.StatusBadRequest, "Invalid date")
            return
        }
        query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
    } else {
        if from := c.Query("startDate"); from != "" {
            start, err := time.Parse("2006-01-02", from)
            if err != nil {
                response.Error(c, http.StatusBadRequest, "Invalid startDate")
                return
            }
            query = query.Where("date >= ?", start)
        }
        if to := c.Query("endDate"); to != "" {
            end, err := time.Parse("2006-01-02", to)
            if err != nil {
                response.Error(c, http.StatusBadRequest, "Invalid endDate")
                return
            }
            query = query.Where("date < ?", end.AddDate(0, 0, 1))
        }
    }

    if raw := c.Query("limit"); raw != "" {
        limit, err := strconv.Atoi(raw)
        if err != nil || limit < 1 {
            response.Error(c, http.StatusBadRequest, "Invalid limit")
            return
        }
        query = query.Limit(limit)
    }

    var rounds []models.Round
    if err := query.Find(&rounds).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetRounds)
        return
    }

    for i := range rounds {
        stripUsers(&rounds[i])
    }

    c.JSON(http.StatusOK, rounds)
}

// GetRound retrieves a single round
// @Summary Get Round
// @Description Get a round by ID; scorer, participants and admins only
// @Tags Rounds
// @Param id path string true "Round ID"
// @Success 200 {object} models.Round
// @Failure 401,403,404 {object} map[string]string
// @Router /rounds/{id} [get]
// @Security Bearer
func GetRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var round models.Round
    if err := database.DB.
        Preload("Course").
        Preload("Club").
        Preload("Event").
        Preload("Scorer").
        Where("id = ?", c.Param("id")).First(&round).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrRoundNotFound)
        return
    }

    if !canViewRound(user, &round) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    stripUsers(&round)
    c.JSON(http.StatusOK, round)
}

// CreateRound creates a round, seeded from a course when one is given. The
// creator becomes the scorer and is always added as the first participant.
// @Summary Create Round
// @Description Create a round; a course prefills club, scoring system and layout
// @Tags Rounds
// @Param request body CreateRoundRequest true "Round details"
// @Success 201 {object} models.Round
// @Failure 400,401,404 {object} map[string]string
// @Router /rounds [post]
// @Security Bearer
func CreateRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req CreateRoundRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    round := models.Round{
        Name:          req.Name,
        ScoringSystem: req.ScoringSystem,
        Date:          time.Now(),
        ClubID:        req.ClubID,
        Notes:         req.Notes,
        Status:        models.RoundStatusActive,
        ScorerID:      user.ID,
    }
    if req.Date != nil {
        round.Date = *req.Date
    }
    if req.Weather != nil {
        round.Weather = models.Weather{
            Conditions:  req.Weather.Conditions,
            Temperature: req.Weather.Temperature,
            WindSpeed:   req.Weather.WindSpeed,
        }
    }

    if req.CourseID != nil {
        var course models.Course
        if err := database.DB.Where("id = ?", *req.CourseID).First(&course).Error; err != nil {
            response.Error(c, http.StatusNotFound, ErrCourseNotFound)
            return
        }
        round.CourseID = &course.ID
        round.ClubID = &course.ClubID
        if round.ScoringSystem == "" {
            round.ScoringSystem = course.ScoringSystem
        }
    }

    if !round.ScoringSystem.Valid() {
        response.Error(c, http.StatusBadRequest, ErrInvalidScoringSystem)
        return
    }

    if req.EventID != nil {
        var event models.Event
        if err := database.DB.Where("id = ?", *req.EventID).First(&event).Error; err != nil {
            response.Error(c, http.StatusNotFound, ErrEventNotFound)
            return
        }
        round.EventID = &event.ID
    }

    // The scorer shoots too; verification is moot for one's own round.
    if err := round.AddParticipant(user, true); err != nil {
        response.DomainError(c, err)
        return
    }

    if err := database.DB.Create(&round).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToSaveRound)
        return
    }

    c.JSON(http.StatusCreated, round)
}

// UpdateRound updates a round's mutable details
// @Summary Update Round
// @Description Update name, date, notes, weather or (while unscored) the scoring system
// @Tags Rounds
// @Param id path string true "Round ID"
// @Param request body UpdateRoundRequest true "Round details"
// @Success 200 {object} models.Round
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id} [put]
// @Security Bearer
func UpdateRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req UpdateRoundRequest
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

    if req.ScorerID != nil && *req.ScorerID != round.ScorerID {
        tx.Rollback()
        response.DomainError(c, models.ErrImmutableField)
        return
    }

    if req.ScoringSystem != "" {
        if err := round.ChangeScoringSystem(req.ScoringSystem); err != nil {
            tx.Rollback()
            response.DomainError(c, err)
            return
        }
    }

    if req.Name != nil {
        round.Name = *req.Name
    }
    if req.Date != nil {
        round.Date = *req.Date
    }
    if req.Notes != nil {
        round.Notes = *req.Notes
    }
    if req.Weather != nil {
        round.Weather = models.Weather{
            Conditions:  req.Weather.Conditions,
            Temperature: req.Weather.Temperature,
            WindSpeed:   req.Weather.WindSpeed,
        }
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

// DeleteRound deletes a round, unless it belongs to an event
// @Summary Delete Round
// @Description Delete a round; event-linked rounds are kept for the event's records
// @Tags Rounds
// @Param id path string true "Round ID"
// @Success 204
// @Failure 400,401,403,404 {object} map[string]string
// @Router /rounds/{id} [delete]
// @Security Bearer
func DeleteRound(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var round models.Round
    if err := database.DB.Where("id = ?", c.Param("id")).First(&round).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrRoundNotFound)
        return
    }

    if !canScoreRound(user, &round) {
        response.Error(c, http.StatusForbidden, ErrNoPermission)
        return
    }

    if err := round.CanDelete(); err != nil {
        response.DomainError(c, err)
        return
    }

    if err := database.DB.Delete(&round).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteRound)
        return
    }

    c.Status(http.StatusNoContent)
}

// stripUsers blanks password hashes on any preloaded user associations
func stripUsers(round *models.Round) {
    if round.Scorer != nil {
        round.Scorer.Password = ""
    }
}
