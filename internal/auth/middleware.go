package auth

import (
	"errors"
	"strings"

	"gymcore/internal/api"
	"gymcore/internal/apperr"

	"github.com/gin-gonic/gin"
)

const (
	ctxClaims   = "auth_claims"
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

func unauthenticated(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	api.RespondError(c, apperr.WithMessage(apperr.ErrUnauthenticated, message))
}

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "Bearer") {
			unauthenticated(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthenticated(c, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				unauthenticated(c, "Token expired")
			} else {
				unauthenticated(c, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != TokenTypeAccess {
			unauthenticated(c, "Access token required")
			return
		}

		c.Set(ctxClaims, claims)
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserRole, claims.Role)

		c.Next()
	}
}

// SetRole overrides the role taken from the token with the stored one.
func SetRole(c *gin.Context, role Role) {
	c.Set(ctxUserRole, role)
}

// RequirePermission aborts with 403 unless the caller's role grants p.
func RequirePermission(p Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ctxUserRole)
		if !exists {
			unauthenticated(c, "User role not found")
			return
		}

		role, ok := value.(Role)
		if !ok {
			unauthenticated(c, "Invalid role type")
			return
		}

		if !role.Can(p) {
			api.RespondError(c, apperr.ErrForbidden)
			return
		}

		c.Next()
	}
}

func GetClaims(c *gin.Context) (*JWTClaims, bool) {
	value, exists := c.Get(ctxClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*JWTClaims)
	return claims, ok
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}
