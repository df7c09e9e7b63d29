package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/interfaces/http/middleware"
	"ledger-recovery.backend/internal/interfaces/http/response"
)

// mustPrincipal fetches the principal set by the auth middleware. A
// missing principal means the route was wired without it; reject rather
// than act unauthenticated.
func mustPrincipal(c *gin.Context) (*entities.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return principal, true
}

// uuidParam parses a uuid path parameter, rejecting the request on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
