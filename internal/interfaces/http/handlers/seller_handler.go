package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/interfaces/http/response"
	"ledger-recovery.backend/internal/usecases"
)

// SellerHandler handles seller-scoped endpoints
type SellerHandler struct {
	sellerUsecase *usecases.SellerUsecase
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerUsecase *usecases.SellerUsecase) *SellerHandler {
	return &SellerHandler{
		sellerUsecase: sellerUsecase,
	}
}

// Dashboard returns the seller account and its assigned clients
// GET /api/seller/dashboard
func (h *SellerHandler) Dashboard(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	seller, clients, err := h.sellerUsecase.Dashboard(c.Request.Context(), principal.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"seller": gin.H{
			"id":    seller.ID,
			"email": seller.Email,
			"role":  seller.Role,
		},
		"assignedClients": clients,
	})
}

// AssignedClients lists the clients assigned to the seller
// GET /api/seller/assigned-clients
func (h *SellerHandler) AssignedClients(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	clients, err := h.sellerUsecase.AssignedClients(c.Request.Context(), principal.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignedClients": clients})
}

// SetClientAmount sets the negotiated amount on an assigned client
// PATCH /api/seller/client/:id/amount
func (h *SellerHandler) SetClientAmount(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.SetAmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.sellerUsecase.SetClientAmount(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Amount updated")
}

// SendPaymentMessage posts a payment message to an assigned client
// POST /api/seller/client/:id/payment-message
func (h *SellerHandler) SendPaymentMessage(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.PaymentMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	msg, err := h.sellerUsecase.SendPaymentMessage(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"paymentMessage": msg})
}
