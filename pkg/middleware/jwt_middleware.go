package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mem "vehireview/pkg/memcache"
	"vehireview/pkg/utils"
)

const (
	ContextUserID   = "user_id"
	ContextRole     = "Role"
	ContextTokenID  = "token_id"
	ContextTokenExp = "token_exp"
)

func JWTAuthMiddleware(secret []byte, revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		if !authenticate(c, secret, revoked, strings.TrimPrefix(authHeader, "Bearer ")) {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a valid token is sent
// and lets anonymous requests through untouched.
func OptionalAuthMiddleware(secret []byte, revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			authenticate(c, secret, revoked, strings.TrimPrefix(authHeader, "Bearer "))
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, secret []byte, revoked mem.RevokedTokenStore, tokenString string) bool {
	claims, err := utils.ValidateToken(secret, tokenString)
	if err != nil || revoked.IsRevoked(claims.ID) {
		return false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return false
	}

	// Pass user information to the next handler
	c.Set(ContextUserID, userID)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Set(ContextTokenExp, claims.ExpiresAt.Time)
	}
	return true
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated caller, or uuid.Nil and false.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
