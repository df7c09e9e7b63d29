package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/internal/interfaces/http/response"
	"ledger-recovery.backend/internal/usecases"
)

// ClientHandler handles client-scoped endpoints
type ClientHandler struct {
	clientUsecase *usecases.ClientUsecase
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientUsecase *usecases.ClientUsecase) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
	}
}

// Dashboard returns the client's own record, payment messages and tax rate
// GET /api/client/dashboard
func (h *ClientHandler) Dashboard(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	dashboard, err := h.clientUsecase.Dashboard(c.Request.Context(), principal.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dashboard)
}
