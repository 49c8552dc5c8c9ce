package events

import "time"

// Error messages constants
const (
	ErrEventNotFound       = "Event not found"
	ErrClubNotFound        = "Club not found"
	ErrCourseNotFound      = "Course not found"
	ErrNoPermission        = "User does not have permission for this action"
	ErrFailedToGetEvents   = "Failed to get events"
	ErrFailedToSaveEvent   = "Failed to save event"
	ErrFailedToDeleteEvent = "Failed to delete event"
	ErrAlreadyRegistered   = "User is already registered for this event"
	ErrNotRegistered       = "User is not registered for this event"
	ErrInvalidDates        = "Event end date must not be before its start date"
)

// EventRequest is the create/update payload for an event
type EventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	ClubID      string    `json:"club" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	CourseIDs   []string  `json:"courses"`
}
