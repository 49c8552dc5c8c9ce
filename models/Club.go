package models

import "time"

// Club represents an archery club. Clubs start unapproved and are hidden from
// regular members until an admin approves them.
type Club struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description  string    `gorm:"type:varchar(500);not null" json:"description"`
	Address      string    `gorm:"type:varchar(255)" json:"address"`
	City         string    `gorm:"type:varchar(100)" json:"city"`
	State        string    `gorm:"type:varchar(100)" json:"state"`
	Country      string    `gorm:"type:varchar(100)" json:"country"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone string    `gorm:"type:varchar(50)" json:"contactPhone"`
	Website      string    `gorm:"type:varchar(255)" json:"website"`
	Approved     bool      `gorm:"not null;default:false" json:"approved"`
	Members      []*User   `gorm:"many2many:user_clubs;" json:"members,omitempty"`
	Admins       []*User   `gorm:"many2many:club_admins;" json:"admins,omitempty"`
	CreatedByID  string    `gorm:"type:uuid;not null;column:created_by" json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
