package models

import "time"

// Event represents a club event (shoot day, competition) that rounds can be
// attached to. Rounds linked to an event cannot be deleted independently.
type Event struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	ClubID       string    `gorm:"type:uuid;not null;column:club_id" json:"club"`
	Club         *Club     `gorm:"foreignKey:ClubID" json:"clubInfo,omitempty"`
	StartDate    time.Time `gorm:"not null" json:"startDate"`
	EndDate      time.Time `gorm:"not null" json:"endDate"`
	Rounds       []*Round  `gorm:"foreignKey:EventID" json:"rounds,omitempty"`
	Courses      []*Course `gorm:"many2many:event_courses;" json:"courses,omitempty"`
	Participants []*User   `gorm:"many2many:event_participants;" json:"participants,omitempty"`
	CreatedByID  string    `gorm:"type:uuid;not null;column:created_by" json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
