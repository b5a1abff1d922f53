package tenant

import (
	"gymcore/internal/api"
	"gymcore/internal/apperr"
	"gymcore/internal/auth"

	"github.com/gin-gonic/gin"
)

const ctxPrincipal = "principal"

// ResolvePrincipal runs after auth.AuthMiddleware and replaces the token's
// view of the caller with the stored one.
func ResolvePrincipal(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.GetClaims(c)
		if !ok {
			api.RespondError(c, apperr.ErrUnauthenticated)
			return
		}

		p, err := gate.Resolve(c.Request.Context(), claims)
		if err != nil {
			api.RespondError(c, err)
			return
		}

		c.Set(ctxPrincipal, p)
		auth.SetRole(c, p.Role)
		c.Next()
	}
}

func RequireActiveGym(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			api.RespondError(c, apperr.ErrUnauthenticated)
			return
		}

		if err := gate.VerifyActiveGym(c.Request.Context(), p); err != nil {
			api.RespondError(c, err)
			return
		}

		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, exists := c.Get(ctxPrincipal)
	if !exists {
		return nil, false
	}
	p, ok := value.(*Principal)
	return p, ok
}

// SetPrincipal stores p on the context. Used by tests and by handlers that
// run without the full middleware chain.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(ctxPrincipal, p)
}

// GymID returns the caller's gym or writes an error response.
func GymID(c *gin.Context) (int, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		api.RespondError(c, apperr.ErrUnauthenticated)
		return 0, false
	}
	if p.GymID == nil {
		api.RespondError(c, apperr.WithMessage(apperr.ErrForbidden, "Operation requires a gym account"))
		return 0, false
	}
	return *p.GymID, true
}
