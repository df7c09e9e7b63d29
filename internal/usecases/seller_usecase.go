package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/domain/repositories"
)

// SellerUsecase handles the seller view over assigned clients. A seller
// may only touch clients currently assigned to them.
type SellerUsecase struct {
	userRepo   repositories.UserRepository
	clientRepo repositories.ClientRepository
	auditRepo  repositories.AuditLogRepository
}

// NewSellerUsecase creates a new seller usecase
func NewSellerUsecase(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	auditRepo repositories.AuditLogRepository,
) *SellerUsecase {
	return &SellerUsecase{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		auditRepo:  auditRepo,
	}
}

// Dashboard returns the seller account and its assigned clients.
func (u *SellerUsecase) Dashboard(ctx context.Context, sellerID uuid.UUID) (*entities.User, []*entities.ClientRecord, error) {
	seller, err := u.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, nil, err
	}
	clients, err := u.clientRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, nil, err
	}
	return seller, clients, nil
}

// AssignedClients returns the clients assigned to a seller.
func (u *SellerUsecase) AssignedClients(ctx context.Context, sellerID uuid.UUID) ([]*entities.ClientRecord, error) {
	return u.clientRepo.ListBySeller(ctx, sellerID)
}

// ownedClient loads a client and asserts the seller owns the assignment.
// An existing but unassigned client yields Forbidden, not NotFound, so a
// seller can tell "not yours" from "no such client".
func (u *SellerUsecase) ownedClient(ctx context.Context, sellerID uuid.UUID, clientID uuid.UUID) (*entities.ClientRecord, error) {
	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !client.AssignedSellerID.Valid || client.AssignedSellerID.String != sellerID.String() {
		return nil, domainerrors.Forbidden("client is not assigned to you")
	}
	return client, nil
}

// SetClientAmount sets the negotiated amount on an assigned client.
func (u *SellerUsecase) SetClientAmount(ctx context.Context, sellerID uuid.UUID, clientID uuid.UUID, input *entities.SetAmountInput, ip string) error {
	if input.Amount == nil {
		return domainerrors.Validation("amount is required")
	}
	if *input.Amount < 0 {
		return domainerrors.Validation("amount must not be negative")
	}

	if _, err := u.ownedClient(ctx, sellerID, clientID); err != nil {
		return err
	}
	if err := u.clientRepo.UpdateAmount(ctx, clientID, *input.Amount); err != nil {
		return err
	}
	appendAudit(ctx, u.auditRepo, sellerID, entities.AuditActionAmountUpdate, "client", clientID.String(), strconv.FormatInt(*input.Amount, 10), ip)
	return nil
}

// SendPaymentMessage appends a payment message an assigned client sees
// on their dashboard.
func (u *SellerUsecase) SendPaymentMessage(ctx context.Context, sellerID uuid.UUID, clientID uuid.UUID, input *entities.PaymentMessageInput, ip string) (*entities.PaymentMessage, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return nil, domainerrors.Validation("message must not be empty")
	}

	if _, err := u.ownedClient(ctx, sellerID, clientID); err != nil {
		return nil, err
	}

	msg := &entities.PaymentMessage{
		ClientID: clientID,
		SellerID: sellerID,
		Message:  text,
	}
	if err := u.clientRepo.AddPaymentMessage(ctx, msg); err != nil {
		return nil, err
	}
	appendAudit(ctx, u.auditRepo, sellerID, entities.AuditActionPaymentMessage, "client", clientID.String(), "", ip)
	return msg, nil
}
