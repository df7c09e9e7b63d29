package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"ledger-recovery.backend/internal/domain/entities"
)

// ClientRepository defines client registry operations. Mutations to a
// single record are serialized by the implementation; distinct records
// never block each other.
type ClientRepository interface {
	Create(ctx context.Context, client *entities.ClientRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ClientRecord, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientRecord, error)
	List(ctx context.Context) ([]*entities.ClientRecord, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.ClientRecord, error)
	ListPendingTaxes(ctx context.Context) ([]*entities.ClientRecord, error)

	ReplaceBalances(ctx context.Context, id uuid.UUID, balances entities.Balances) error
	UpdateRiskLevel(ctx context.Context, id uuid.UUID, level entities.RiskLevel) error
	UpdateActiveStatus(ctx context.Context, id uuid.UUID, isActive bool) error
	UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error
	UpdateAssignedSeller(ctx context.Context, id uuid.UUID, sellerID null.String) error
	UpdateLastConnection(ctx context.Context, id uuid.UUID, ip string) error

	AddNote(ctx context.Context, note *entities.AdminNote) error
	ListNotes(ctx context.Context, clientID uuid.UUID) ([]*entities.AdminNote, error)
	AddPaymentMessage(ctx context.Context, msg *entities.PaymentMessage) error
	ListPaymentMessages(ctx context.Context, clientID uuid.UUID) ([]*entities.PaymentMessage, error)
}

// KYCDocumentRepository defines KYC document metadata operations
type KYCDocumentRepository interface {
	Create(ctx context.Context, doc *entities.KYCDocument) error
	List(ctx context.Context) ([]*entities.KYCDocument, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.KYCDocument, error)
}

// SettingRepository defines platform setting operations
type SettingRepository interface {
	Get(ctx context.Context, key string) (*entities.Setting, error)
	Set(ctx context.Context, key, value string) error
}
