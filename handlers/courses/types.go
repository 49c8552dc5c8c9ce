package courses

import "fieldscore/scoring"

// Error messages constants
const (
	ErrCourseNotFound       = "Course not found"
	ErrClubNotFound         = "Club not found"
	ErrNoPermission         = "User does not have permission for this action"
	ErrFailedToGetCourses   = "Failed to get courses"
	ErrFailedToSaveCourse   = "Failed to save course"
	ErrFailedToDeleteCourse = "Failed to delete course"
	ErrInvalidScoringSystem = "Invalid scoring system"
	ErrNameTakenInClub      = "A course with this name already exists in this club"
)

// CourseRequest is the create/update payload for a course
type CourseRequest struct {
	Name            string         `json:"name" binding:"required"`
	Description     string         `json:"description"`
	ClubID          string         `json:"club" binding:"required"`
	ScoringSystem   scoring.System `json:"scoringSystem" binding:"required"`
	Targets         int            `json:"targets" binding:"required,min=1"`
	ArrowsPerTarget int            `json:"arrowsPerTarget" binding:"omitempty,min=1,max=3"`
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
}
