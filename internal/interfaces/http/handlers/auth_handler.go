package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/interfaces/http/middleware"
	"ledger-recovery.backend/internal/interfaces/http/response"
	"ledger-recovery.backend/internal/usecases"
)

// sessionCookieMaxAge keeps the cookie lifetime aligned with the
// server-side session TTL set at login.
const sessionCookieMaxAge = 24 * 3600

// AuthHandler handles the role-scoped login endpoints and session state
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) login(c *gin.Context, role entities.UserRole) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sessionID, user, err := h.authUsecase.Login(c.Request.Context(), role, &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// ClientLogin handles client login
// POST /api/client/login
func (h *AuthHandler) ClientLogin(c *gin.Context) {
	h.login(c, entities.UserRoleClient)
}

// AdminLogin handles administrator login
// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, entities.UserRoleAdmin)
}

// SellerLogin handles seller login
// POST /api/seller/login
func (h *AuthHandler) SellerLogin(c *gin.Context) {
	h.login(c, entities.UserRoleSeller)
}

// Logout invalidates the caller's session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.SessionIDFromRequest(c)
	if err := h.authUsecase.Logout(c.Request.Context(), sessionID, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Message(c, http.StatusOK, "Logged out")
}

// GetMe reports the authenticated identity. Never fails: an anonymous
// caller gets an explicit "not authenticated" body with a 200.
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	sessionID := middleware.SessionIDFromRequest(c)
	principal, err := h.authUsecase.CurrentPrincipal(c.Request.Context(), sessionID)
	if err != nil {
		response.Message(c, http.StatusOK, "Not authenticated")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    principal.UserID,
			"email": principal.Email,
			"role":  principal.Role,
		},
	})
}

// RegisterClient handles public client registration
// POST /api/client/register
func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var input entities.RegisterClientInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.RegisterClient(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
