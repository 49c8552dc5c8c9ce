package clubs

// Error messages constants
const (
	ErrClubNotFound       = "Club not found"
	ErrNoPermission       = "User does not have permission for this action"
	ErrFailedToGetClubs   = "Failed to get clubs"
	ErrFailedToSaveClub   = "Failed to save club"
	ErrFailedToDeleteClub = "Failed to delete club"
	ErrAlreadyMember      = "User is already a member of this club"
	ErrNotMember          = "User is not a member of this club"
	ErrNameTaken          = "A club with this name already exists"
)

// ClubRequest is the create/update payload for a club
type ClubRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Website      string `json:"website"`
}
