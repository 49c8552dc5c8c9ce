package users

// Error messages constants
const (
	ErrUserNotFound         = "User not found"
	ErrClubNotFound         = "Club not found"
	ErrNoPermission         = "User does not have permission for this action"
	ErrFailedToGetUsers     = "Failed to get users"
	ErrFailedToUpdateUser   = "Failed to update user"
	ErrFailedToDeleteUser   = "Failed to delete user"
	ErrFailedToHashPassword = "Failed to hash password"
	ErrInvalidRole          = "Invalid role"
	ErrWrongPassword        = "Current password is incorrect"
	ErrNotClubMember        = "User is not a member of this club"
)

// ProfileUpdate is the payload for a user editing their own profile
type ProfileUpdate struct {
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profilePicture"`
}

// PasswordUpdate represents a password update request
type PasswordUpdate struct {
	CurrentPassword string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// RoleUpdate changes a user's role
type RoleUpdate struct {
	Role string `json:"role" binding:"required"`
}

// HomeClubUpdate sets the user's home club
type HomeClubUpdate struct {
	ClubID *string `json:"homeClub"`
}

// ChildRequest creates a child account linked to the requesting parent
type ChildRequest struct {
	Name string `json:"name" binding:"required"`
}
