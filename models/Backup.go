package models

import "time"

// Backup records a database dump taken through the admin backup endpoint
type Backup struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Filename    string    `gorm:"type:varchar(255);unique;not null" json:"filename"`
	SizeBytes   int64     `gorm:"not null" json:"sizeBytes"`
	CreatedByID string    `gorm:"type:uuid;not null;column:created_by" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
