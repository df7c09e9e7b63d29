package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/interfaces/http/response"
	"ledger-recovery.backend/internal/usecases"
)

// AdminHandler handles admin-scoped endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// Dashboard returns every client record and the platform tax rate
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	clients, taxRate, err := h.adminUsecase.Dashboard(c.Request.Context(), principal.UserID, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"clients": clients,
		"taxRate": taxRate,
	})
}

// AuditLogs queries the audit trail
// GET /api/admin/audit-logs
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	filter := entities.AuditLogFilter{
		Action: c.Query("action"),
	}
	if actor := c.Query("actorId"); actor != "" {
		id, err := uuid.Parse(actor)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid actorId"))
			return
		}
		filter.ActorID = id
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			response.Error(c, domainerrors.BadRequest("invalid limit"))
			return
		}
		filter.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			response.Error(c, domainerrors.BadRequest("invalid offset"))
			return
		}
		filter.Offset = n
	}

	logs, err := h.adminUsecase.ListAuditLogs(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"auditLogs": logs})
}

// KYCDocuments lists uploaded KYC document metadata
// GET /api/admin/kyc/documents
func (h *AdminHandler) KYCDocuments(c *gin.Context) {
	documents, err := h.adminUsecase.ListKYCDocuments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"documents": documents})
}

// RecoveryRequests lists all submitted recovery requests
// GET /api/admin/recovery/requests
func (h *AdminHandler) RecoveryRequests(c *gin.Context) {
	var (
		requests []*entities.RecoveryRequest
		err      error
	)
	if c.Query("status") == "pending" {
		requests, err = h.adminUsecase.ListPendingRecoveryRequests(c.Request.Context())
	} else {
		requests, err = h.adminUsecase.ListRecoveryRequests(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

// TransitionRecovery advances a recovery request's status
// PATCH /api/admin/recovery/requests/:id/status
func (h *AdminHandler) TransitionRecovery(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.TransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.TransitionRecovery(c.Request.Context(), principal.UserID, requestID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Status updated")
}

// PendingTaxes lists active clients with an unpaid tax charge
// GET /api/admin/taxes/pending
func (h *AdminHandler) PendingTaxes(c *gin.Context) {
	pending, err := h.adminUsecase.ListPendingTaxes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pendingTaxes": pending})
}

// UpdateTaxRate sets the platform-wide tax rate
// POST /api/admin/taxes/rate
func (h *AdminHandler) UpdateTaxRate(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var input entities.UpdateTaxRateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.UpdateTaxRate(c.Request.Context(), principal.UserID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Tax rate updated")
}

// GetClient returns a single client record
// GET /api/admin/client/:id
func (h *AdminHandler) GetClient(c *gin.Context) {
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	client, err := h.adminUsecase.GetClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

// ListNotes returns a client's notes
// GET /api/admin/client/:id/notes
func (h *AdminHandler) ListNotes(c *gin.Context) {
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	notes, err := h.adminUsecase.ListNotes(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// AddNote appends a note to a client record
// POST /api/admin/client/:id/notes
func (h *AdminHandler) AddNote(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.AddNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	note, err := h.adminUsecase.AddNote(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"note": note})
}

// UpdateStatus activates or deactivates a client
// POST /api/admin/client/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.UpdateStatus(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Status updated")
}

// UpdateRisk changes a client's risk level
// POST /api/admin/client/:id/risk
func (h *AdminHandler) UpdateRisk(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateRiskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.UpdateRisk(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Risk level updated")
}

// UpdateBalances replaces a client's balance set
// POST /api/admin/client/:id/balances
func (h *AdminHandler) UpdateBalances(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateBalancesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.UpdateBalances(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Balances updated")
}

// ResetPassword regenerates a client's credential
// POST /api/admin/client/:id/reset-password
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	tempPassword, err := h.adminUsecase.ResetPassword(c.Request.Context(), principal.UserID, clientID, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"temporaryPassword": tempPassword})
}

// AssignSeller assigns or unassigns a seller on a client
// POST /api/admin/client/:id/assign-seller
func (h *AdminHandler) AssignSeller(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.AssignSellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.AssignSeller(c.Request.Context(), principal.UserID, clientID, &input, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Seller assignment updated")
}
