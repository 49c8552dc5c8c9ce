package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"fieldscore/database"
	"fieldscore/middleware"
	"fieldscore/models"
	"fieldscore/services"
	"fieldscore/utils"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user and returns a session token
// @Summary Login
// @Description Authenticate with email and password, returns a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
    var req LoginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    ctx := c.Request.Context()
    if wait := loginCooldown(ctx, req.Email); wait > 0 {
        response.Error(c, http.StatusTooManyRequests, ErrTooManyAttempts)
        return
    }

    var user models.User
    if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
        recordFailedLogin(ctx, req.Email)
        response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
        return
    }

    if !utils.CheckPassword(req.Password, user.Password) {
        recordFailedLogin(ctx, req.Email)
        response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
        return
    }

    if user.IsChild {
        response.Error(c, http.StatusUnauthorized, ErrChildCannotLogin)
        return
    }

    if !user.Verified {
        response.Error(c, http.StatusUnauthorized, ErrAccountNotVerified)
        return
    }

    token, err := utils.GenerateToken(user.ID, user.Role)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToIssueToken)
        return
    }

    clearFailedLogins(ctx, req.Email)

    user.Password = ""
    c.JSON(http.StatusOK, gin.H{
        "token": token,
        "user":  user,
    })
}

// RegisterUser creates a new account and sends the verification email
// @Summary Register
// @Description Create a new account; a verification email is sent before login is allowed
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New account"
// @Success 201 {object} map[string]string
// @Failure 400,409 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
    var req RegisterRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var existing models.User
    if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
        response.Error(c, http.StatusConflict, ErrEmailTaken)
        return
    }

    hashed, err := utils.HashPassword(req.Password)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
        return
    }

    token, err := utils.RandomToken()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToCreateUser)
        return
    }
    hashedToken := hashToken(token)
    expire := time.Now().Add(24 * time.Hour)

    user := models.User{
        Name:               req.Name,
        Email:              req.Email,
        Password:           hashed,
        Role:               models.RoleUser,
        VerificationToken:  &hashedToken,
        VerificationExpire: &expire,
    }

    if err := database.DB.Create(&user).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToCreateUser)
        return
    }

    emailService := services.NewEmailService()
    if err := emailService.SendVerificationEmail(user.Email, token); err != nil {
        // Account exists; the user can request a new verification mail later
        c.JSON(http.StatusCreated, gin.H{"message": "Account created, but the verification email could not be sent"})
        return
    }

    c.JSON(http.StatusCreated, gin.H{"message": "Account created, please check your email to verify your address"})
}

// VerifyEmail marks an account verified using the emailed token
// @Summary Verify Email
// @Description Verify an account using the token from the verification email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyEmailRequest true "Verification token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/verify-email [post]
func VerifyEmail(c *gin.Context) {
    var req VerifyEmailRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    hashedToken := hashToken(req.Token)

    var user models.User
    err := database.DB.
        Where("verification_token = ?", hashedToken).
        Where("verification_expire > ?", time.Now()).
        First(&user).Error
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidVerifyToken)
        return
    }

    updates := map[string]interface{}{
        "verified":            true,
        "verification_token":  nil,
        "verification_expire": nil,
    }
    if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to verify account")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Email verified, you can now log in"})
}

// CheckAuth returns the authenticated user
// @Summary Check authentication
// @Description Return the current user if the session token is valid
// @Tags Auth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    user.Password = ""
    c.JSON(http.StatusOK, user)
}

// Logout drops the cached session
// @Summary Logout
// @Description Invalidate the cached session for the current user
// @Tags Auth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
// @Security Bearer
func Logout(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    middleware.InvalidateUserCache(c, user.ID)
    c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func hashToken(token string) string {
    sum := sha256.Sum256([]byte(token))
    return hex.EncodeToString(sum[:])
}
