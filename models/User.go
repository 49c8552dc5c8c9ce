package models

import "time"

// User roles, from least to most privileged
const (
	RoleUser      = "user"
	RoleClubAdmin = "club_admin"
	RoleAdmin     = "admin"
	RoleSuperUser = "super_user"
)

// User represents an archer account. Children are linked accounts managed by a
// parent and cannot log in themselves.
type User struct {
	ID                 string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name               string     `gorm:"type:varchar(100);not null" json:"name"`
	Email              string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password           string     `gorm:"type:varchar(255);not null" json:"-"`
	Role               string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Verified           bool       `gorm:"not null;default:false" json:"verified"`
	VerificationToken  *string    `gorm:"type:varchar(255)" json:"-"`
	VerificationExpire *time.Time `json:"-"`
	ResetPasswordToken *string    `gorm:"type:varchar(255)" json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	Clubs              []*Club    `gorm:"many2many:user_clubs;" json:"clubs,omitempty"`
	HomeClubID         *string    `gorm:"type:uuid;column:home_club_id" json:"homeClub"`
	IsChild            bool       `gorm:"not null;default:false" json:"isChild"`
	ParentID           *string    `gorm:"type:uuid;column:parent_id" json:"parent,omitempty"`
	CustomQRCode       *string    `gorm:"type:varchar(255)" json:"customQRCode"`
	ProfilePicture     *string    `gorm:"type:varchar(255)" json:"profilePicture"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// IsAdmin reports whether the user holds a site-wide admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperUser || u.Role == RoleAdmin
}

// CanBypassVerification reports whether the user may add unverified archers to
// a round. Club admins manage paper-registered members, so they qualify.
func (u *User) CanBypassVerification() bool {
	return u.IsAdmin() || u.Role == RoleClubAdmin
}
