package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/interfaces/http/response"
	"ledger-recovery.backend/internal/usecases"
)

// RecoveryHandler handles the public recovery-intake endpoints. None of
// them require a session.
type RecoveryHandler struct {
	recoveryUsecase *usecases.RecoveryUsecase
}

// NewRecoveryHandler creates a new recovery handler
func NewRecoveryHandler(recoveryUsecase *usecases.RecoveryUsecase) *RecoveryHandler {
	return &RecoveryHandler{
		recoveryUsecase: recoveryUsecase,
	}
}

// SubmitWallet files a lost-wallet request
// POST /api/recovery/wallet
func (h *RecoveryHandler) SubmitWallet(c *gin.Context) {
	var input entities.WalletRecoveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.recoveryUsecase.SubmitWalletRecovery(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"requestId": req.ID})
}

// SubmitSeedPhrase files a partial-seed-phrase request
// POST /api/recovery/seed-phrase
func (h *RecoveryHandler) SubmitSeedPhrase(c *gin.Context) {
	var input entities.SeedPhraseRecoveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.recoveryUsecase.SubmitSeedPhraseRecovery(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"requestId": req.ID})
}

// SubmitPassword files a forgotten-password request
// POST /api/recovery/password
func (h *RecoveryHandler) SubmitPassword(c *gin.Context) {
	var input entities.PasswordRecoveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.recoveryUsecase.SubmitPasswordRecovery(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"requestId": req.ID})
}

// SubmitServiceRequest files a generic client service request
// POST /api/client/recovery-request
func (h *RecoveryHandler) SubmitServiceRequest(c *gin.Context) {
	var input entities.ServiceRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.recoveryUsecase.SubmitServiceRequest(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"requestId": req.ID})
}
