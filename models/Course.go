package models

import (
	"time"

	"fieldscore/scoring"
)

// Course represents a laid-out set of targets at a club. Its target count,
// arrows per target and scoring system seed new rounds shot on it.
type Course struct {
	ID              string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name            string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_club_course_name" json:"name"`
	Description     string         `gorm:"type:varchar(500)" json:"description"`
	ClubID          string         `gorm:"type:uuid;not null;column:club_id;uniqueIndex:idx_club_course_name" json:"club"`
	Club            *Club          `gorm:"foreignKey:ClubID" json:"clubInfo,omitempty"`
	ScoringSystem   scoring.System `gorm:"type:varchar(10);not null" json:"scoringSystem"`
	Targets         int            `gorm:"not null" json:"targets"`
	ArrowsPerTarget int            `gorm:"not null;default:3" json:"arrowsPerTarget"`
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
	QRCode          *string        `gorm:"type:varchar(255)" json:"qrCode"`
	Active          bool           `gorm:"not null;default:true" json:"active"`
	CreatedByID     string         `gorm:"type:uuid;not null;column:created_by" json:"createdBy"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// MaxScore returns the highest total a participant can shoot on this course
func (c *Course) MaxScore() int {
	return scoring.RoundMaxScore(c.ScoringSystem, c.Targets, c.ArrowsPerTarget)
}
