package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/domain/repositories"
	"ledger-recovery.backend/pkg/crypto"
	"ledger-recovery.backend/pkg/redis"
)

const (
	minTaxRate = 0.0
	maxTaxRate = 50.0
)

// AdminUsecase handles the administrative view over the client registry,
// recovery requests, KYC documents and platform settings. Every mutation
// journals exactly one audit entry.
type AdminUsecase struct {
	userRepo     repositories.UserRepository
	clientRepo   repositories.ClientRepository
	recoveryRepo repositories.RecoveryRequestRepository
	auditRepo    repositories.AuditLogRepository
	kycRepo      repositories.KYCDocumentRepository
	settingRepo  repositories.SettingRepository
	sessionStore *redis.SessionStore
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	recoveryRepo repositories.RecoveryRequestRepository,
	auditRepo repositories.AuditLogRepository,
	kycRepo repositories.KYCDocumentRepository,
	settingRepo repositories.SettingRepository,
	sessionStore *redis.SessionStore,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		recoveryRepo: recoveryRepo,
		auditRepo:    auditRepo,
		kycRepo:      kycRepo,
		settingRepo:  settingRepo,
		sessionStore: sessionStore,
	}
}

// Dashboard returns all client records together with the platform tax rate.
func (u *AdminUsecase) Dashboard(ctx context.Context, actorID uuid.UUID, ip string) ([]*entities.ClientRecord, float64, error) {
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	taxRate, err := u.TaxRate(ctx)
	if err != nil {
		return nil, 0, err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionDashboardView, "", "", "", ip)
	return clients, taxRate, nil
}

// GetClient returns a single client record.
func (u *AdminUsecase) GetClient(ctx context.Context, clientID uuid.UUID) (*entities.ClientRecord, error) {
	return u.clientRepo.GetByID(ctx, clientID)
}

// ListNotes returns a client's notes, oldest first.
func (u *AdminUsecase) ListNotes(ctx context.Context, clientID uuid.UUID) ([]*entities.AdminNote, error) {
	if _, err := u.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return u.clientRepo.ListNotes(ctx, clientID)
}

// AddNote appends a free-text note to a client record.
func (u *AdminUsecase) AddNote(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, input *entities.AddNoteInput, ip string) (*entities.AdminNote, error) {
	text := strings.TrimSpace(input.Note)
	if text == "" {
		return nil, domainerrors.Validation("note must not be empty")
	}

	note := &entities.AdminNote{
		ClientID: clientID,
		AuthorID: actorID,
		Note:     text,
	}
	if err := u.clientRepo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionNoteAdd, "client", clientID.String(), "", ip)
	return note, nil
}

// UpdateStatus activates or deactivates a client. Records are never
// deleted, only deactivated.
func (u *AdminUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, input *entities.UpdateStatusInput, ip string) error {
	if input.IsActive == nil {
		return domainerrors.Validation("isActive is required")
	}
	if err := u.clientRepo.UpdateActiveStatus(ctx, clientID, *input.IsActive); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionStatusUpdate, "client", clientID.String(), fmt.Sprintf("isActive=%t", *input.IsActive), ip)
	return nil
}

// UpdateRisk changes a client's assessed risk level.
func (u *AdminUsecase) UpdateRisk(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, input *entities.UpdateRiskInput, ip string) error {
	if !input.RiskLevel.Valid() {
		return domainerrors.Validation("unknown risk level: " + string(input.RiskLevel))
	}
	if err := u.clientRepo.UpdateRiskLevel(ctx, clientID, input.RiskLevel); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionRiskUpdate, "client", clientID.String(), string(input.RiskLevel), ip)
	return nil
}

// UpdateBalances replaces a client's balance set wholesale. The incoming
// set must contain only supported currencies and non-negative amounts;
// a rejected update leaves the prior balances untouched.
func (u *AdminUsecase) UpdateBalances(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, input *entities.UpdateBalancesInput, ip string) error {
	for symbol, amount := range input.Balances {
		if _, ok := entities.SupportedCurrencies[symbol]; !ok {
			return domainerrors.Validation("unsupported currency: " + symbol)
		}
		if amount < 0 {
			return domainerrors.Validation("negative balance for " + symbol)
		}
	}
	if err := u.clientRepo.ReplaceBalances(ctx, clientID, input.Balances); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionBalancesUpdate, "client", clientID.String(), fmt.Sprintf("%d currencies", len(input.Balances)), ip)
	return nil
}

// ResetPassword regenerates a client's credential and revokes whatever
// session the client holds. The temporary password is returned once and
// never stored in clear.
func (u *AdminUsecase) ResetPassword(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, ip string) (string, error) {
	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}

	tempPassword, err := crypto.GenerateTemporaryPassword()
	if err != nil {
		return "", err
	}
	passwordHash, err := crypto.HashPassword(tempPassword)
	if err != nil {
		return "", err
	}
	if err := u.userRepo.UpdatePassword(ctx, client.UserID, passwordHash); err != nil {
		return "", err
	}

	if err := u.sessionStore.DeleteUserSession(ctx, client.UserID.String()); err != nil {
		return "", err
	}

	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionPasswordReset, "client", clientID.String(), "", ip)
	return tempPassword, nil
}

// AssignSeller assigns a client to a seller, or unassigns when the
// seller id is empty.
func (u *AdminUsecase) AssignSeller(ctx context.Context, actorID uuid.UUID, clientID uuid.UUID, input *entities.AssignSellerInput, ip string) error {
	sellerID := null.String{}
	if input.SellerID != "" {
		id, err := uuid.Parse(input.SellerID)
		if err != nil {
			return domainerrors.Validation("invalid seller id")
		}
		seller, err := u.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if seller.Role != entities.UserRoleSeller {
			return domainerrors.Validation("user is not a seller")
		}
		sellerID = null.StringFrom(input.SellerID)
	}

	if err := u.clientRepo.UpdateAssignedSeller(ctx, clientID, sellerID); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionSellerAssign, "client", clientID.String(), input.SellerID, ip)
	return nil
}

// TaxRate returns the platform-wide tax rate, falling back to the
// default when none has been stored.
func (u *AdminUsecase) TaxRate(ctx context.Context) (float64, error) {
	setting, err := u.settingRepo.Get(ctx, entities.SettingKeyGlobalTax)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return entities.DefaultGlobalTaxRate, nil
		}
		return 0, err
	}
	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return entities.DefaultGlobalTaxRate, nil
	}
	return rate, nil
}

// UpdateTaxRate sets the platform-wide tax rate. Valid range 0..50.
func (u *AdminUsecase) UpdateTaxRate(ctx context.Context, actorID uuid.UUID, input *entities.UpdateTaxRateInput, ip string) error {
	if input.TaxRate == nil {
		return domainerrors.Validation("taxRate is required")
	}
	rate := *input.TaxRate
	if rate < minTaxRate || rate > maxTaxRate {
		return domainerrors.Validation(fmt.Sprintf("taxRate must be between %.0f and %.0f", minTaxRate, maxTaxRate))
	}
	if err := u.settingRepo.Set(ctx, entities.SettingKeyGlobalTax, strconv.FormatFloat(rate, 'f', -1, 64)); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionTaxUpdate, "setting", entities.SettingKeyGlobalTax, strconv.FormatFloat(rate, 'f', -1, 64), ip)
	return nil
}

// ListPendingTaxes returns active clients with an unpaid tax charge.
func (u *AdminUsecase) ListPendingTaxes(ctx context.Context) ([]*entities.ClientRecord, error) {
	return u.clientRepo.ListPendingTaxes(ctx)
}

// ListKYCDocuments returns all KYC document metadata.
func (u *AdminUsecase) ListKYCDocuments(ctx context.Context) ([]*entities.KYCDocument, error) {
	return u.kycRepo.List(ctx)
}

// ListAuditLogs queries the audit trail, timestamp ascending.
func (u *AdminUsecase) ListAuditLogs(ctx context.Context, filter entities.AuditLogFilter) ([]*entities.AuditLogEntry, error) {
	return u.auditRepo.Query(ctx, filter)
}

// ListRecoveryRequests returns every submitted recovery request.
func (u *AdminUsecase) ListRecoveryRequests(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	return u.recoveryRepo.List(ctx)
}

// ListPendingRecoveryRequests returns requests not yet in a terminal status.
func (u *AdminUsecase) ListPendingRecoveryRequests(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	return u.recoveryRepo.ListPending(ctx)
}

// TransitionRecovery advances a recovery request's status. Terminal
// requests and skipped states are rejected by the store.
func (u *AdminUsecase) TransitionRecovery(ctx context.Context, actorID uuid.UUID, requestID uuid.UUID, input *entities.TransitionInput, ip string) error {
	if !input.Status.Valid() {
		return domainerrors.Validation("unknown status: " + string(input.Status))
	}
	if err := u.recoveryRepo.Transition(ctx, requestID, input.Status); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, actorID, entities.AuditActionRecoveryStatus, "recovery_request", requestID.String(), string(input.Status), ip)
	return nil
}
