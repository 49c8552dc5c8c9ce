package rounds

import (
	"time"

	"fieldscore/scoring"
)

// Error messages constants
const (
	ErrRoundNotFound        = "Round not found"
	ErrCourseNotFound       = "Course not found"
	ErrClubNotFound         = "Club not found"
	ErrEventNotFound        = "Event not found"
	ErrUserNotFound         = "User not found"
	ErrNoPermission         = "User does not have permission for this action"
	ErrFailedToGetRounds    = "Failed to get rounds"
	ErrFailedToSaveRound    = "Failed to save round"
	ErrFailedToDeleteRound  = "Failed to delete round"
	ErrParticipantRequired  = "Either a user email or a guest name is required"
	ErrInvalidScoringSystem = "Invalid scoring system"
)

// CreateRoundRequest creates a round. When a course is given, its scoring
// system and layout seed the round; scoringSystem is then optional.
type CreateRoundRequest struct {
	Name          string         `json:"name" binding:"required"`
	ScoringSystem scoring.System `json:"scoringSystem"`
	Date          *time.Time     `json:"date"`
	CourseID      *string        `json:"course"`
	ClubID        *string        `json:"club"`
	EventID       *string        `json:"event"`
	Notes         string         `json:"notes"`
	Weather       *WeatherInput  `json:"weather"`
}

// UpdateRoundRequest updates a round's mutable details. The scorer is
// immutable and the scoring system locks once scores exist.
type UpdateRoundRequest struct {
	Name          *string        `json:"name"`
	ScoringSystem scoring.System `json:"scoringSystem"`
	Date          *time.Time     `json:"date"`
	Notes         *string        `json:"notes"`
	Weather       *WeatherInput  `json:"weather"`
	ScorerID      *string        `json:"scorer"`
}

// WeatherInput mirrors the weather fields a scorer can note on a round
type WeatherInput struct {
	Conditions  string   `json:"conditions"`
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windSpeed"`
}

// AddParticipantRequest adds either a registered user (by email) or a guest
// (by name) to a round. Exactly one of the two must be set.
type AddParticipantRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ScoreRequest records all arrows shot at one target by one participant.
// Points are derived server-side; any points sent by the client are ignored.
type ScoreRequest struct {
	ParticipantID string          `json:"participantId" binding:"required"`
	NonMember     bool            `json:"nonMember"`
	TargetNumber  int             `json:"targetNumber" binding:"required,min=1"`
	Arrows        []scoring.Arrow `json:"arrows" binding:"required,min=1"`
}
