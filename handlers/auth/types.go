package auth

// Error messages constants
const (
	ErrInvalidCredentials   = "Invalid email or password"
	ErrAccountNotVerified   = "Please verify your email address before logging in"
	ErrChildCannotLogin     = "Child accounts cannot log in directly"
	ErrEmailTaken           = "An account with this email already exists"
	ErrFailedToHashPassword = "Failed to hash password"
	ErrFailedToCreateUser   = "Failed to create user"
	ErrFailedToIssueToken   = "Failed to issue session token"
	ErrInvalidResetToken    = "Invalid or expired reset token"
	ErrInvalidVerifyToken   = "Invalid or expired verification token"
	ErrTooManyAttempts      = "Too many failed login attempts, try again later"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyEmailRequest carries the emailed verification token
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}
