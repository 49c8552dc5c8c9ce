package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"fieldscore/database"
	"fieldscore/models"
	"fieldscore/utils"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey     = "currentUser"
	userCacheKeyPrefix = "user_session:"
	userCacheTTL       = 15 * time.Minute
)

// AuthMiddleware validates the bearer token and loads the current user into
// the request context
func AuthMiddleware() gin.HandlerFunc {
    return func(c *gin.Context) {
        header := c.GetHeader("Authorization")
        if header == "" || !strings.HasPrefix(header, "Bearer ") {
            response.Error(c, http.StatusUnauthorized, "Missing or invalid authorization header")
            c.Abort()
            return
        }

        claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
        if err != nil {
            response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
            c.Abort()
            return
        }

        user, err := loadUser(c, claims.UserID)
        if err != nil {
            response.Error(c, http.StatusUnauthorized, "User no longer exists")
            c.Abort()
            return
        }

        c.Set(userContextKey, user)
        c.Next()
    }
}

// loadUser fetches the user from the redis session cache, falling back to
// postgres and refreshing the cache entry
func loadUser(c *gin.Context, userID string) (*models.User, error) {
    ctx := c.Request.Context()
    cacheKey := userCacheKeyPrefix + userID

    if database.REDIS != nil {
        if cached, err := database.REDIS.Get(ctx, cacheKey).Result(); err == nil {
            var user models.User
            if err := json.Unmarshal([]byte(cached), &user); err == nil {
                return &user, nil
            }
        }
    }

    var user models.User
    if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
        return nil, err
    }

    if database.REDIS != nil {
        if payload, err := json.Marshal(user); err == nil {
            database.REDIS.Set(ctx, cacheKey, payload, userCacheTTL)
        }
    }

    return &user, nil
}

// GetUserFromRequest returns the authenticated user set by AuthMiddleware.
// Writes the error response itself so handlers can just return.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
    value, exists := c.Get(userContextKey)
    if !exists {
        response.Error(c, http.StatusUnauthorized, "Not authenticated")
        c.Abort()
        return nil, errors.New("no user in context")
    }

    user, ok := value.(*models.User)
    if !ok {
        response.Error(c, http.StatusInternalServerError, "Invalid user in context")
        c.Abort()
        return nil, errors.New("invalid user in context")
    }
    return user, nil
}

// InvalidateUserCache drops the cached session entry after profile or role
// changes
func InvalidateUserCache(c *gin.Context, userID string) {
    if database.REDIS != nil {
        database.REDIS.Del(c.Request.Context(), userCacheKeyPrefix+userID)
    }
}
