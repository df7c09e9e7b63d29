package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/internal/domain/entities"
	"ledger-recovery.backend/internal/interfaces/http/response"
)

const (
	// SessionCookieName is the cookie carrying the opaque session id.
	SessionCookieName = "session_id"

	// PrincipalKey is the gin context key holding the resolved principal.
	PrincipalKey = "principal"
)

// SessionValidator resolves a session id to its authenticated principal.
type SessionValidator interface {
	CurrentPrincipal(ctx context.Context, sessionID string) (*entities.Principal, error)
}

// SessionIDFromRequest extracts the session id from the session cookie,
// falling back to a bearer token. Both transports carry the same opaque id.
func SessionIDFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// AuthMiddleware validates the caller's session and stores the principal
// in the request context. Requests without a valid session are rejected.
func AuthMiddleware(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := validator.CurrentPrincipal(c.Request.Context(), SessionIDFromRequest(c))
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireRole asserts the authenticated principal holds the given role.
// Must run after AuthMiddleware.
func RequireRole(role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.Message(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		if principal.Role != role {
			response.Message(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the principal stored by AuthMiddleware.
func GetPrincipal(c *gin.Context) (*entities.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entities.Principal)
	return principal, ok
}
