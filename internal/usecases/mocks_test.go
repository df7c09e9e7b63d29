package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"ledger-recovery.backend/internal/domain/entities"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// MockClientRepository is a mock of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *entities.ClientRecord) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ClientRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientRecord), args.Error(1)
}

func (m *MockClientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientRecord), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*entities.ClientRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ClientRecord), args.Error(1)
}

func (m *MockClientRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.ClientRecord, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ClientRecord), args.Error(1)
}

func (m *MockClientRepository) ListPendingTaxes(ctx context.Context) ([]*entities.ClientRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ClientRecord), args.Error(1)
}

func (m *MockClientRepository) ReplaceBalances(ctx context.Context, id uuid.UUID, balances entities.Balances) error {
	args := m.Called(ctx, id, balances)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateRiskLevel(ctx context.Context, id uuid.UUID, level entities.RiskLevel) error {
	args := m.Called(ctx, id, level)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateActiveStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateAssignedSeller(ctx context.Context, id uuid.UUID, sellerID null.String) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateLastConnection(ctx context.Context, id uuid.UUID, ip string) error {
	args := m.Called(ctx, id, ip)
	return args.Error(0)
}

func (m *MockClientRepository) AddNote(ctx context.Context, note *entities.AdminNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockClientRepository) ListNotes(ctx context.Context, clientID uuid.UUID) ([]*entities.AdminNote, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AdminNote), args.Error(1)
}

func (m *MockClientRepository) AddPaymentMessage(ctx context.Context, msg *entities.PaymentMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockClientRepository) ListPaymentMessages(ctx context.Context, clientID uuid.UUID) ([]*entities.PaymentMessage, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentMessage), args.Error(1)
}

// MockRecoveryRequestRepository is a mock of RecoveryRequestRepository
type MockRecoveryRequestRepository struct {
	mock.Mock
}

func (m *MockRecoveryRequestRepository) Create(ctx context.Context, req *entities.RecoveryRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRecoveryRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecoveryRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecoveryRequest), args.Error(1)
}

func (m *MockRecoveryRequestRepository) List(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecoveryRequest), args.Error(1)
}

func (m *MockRecoveryRequestRepository) ListPending(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecoveryRequest), args.Error(1)
}

func (m *MockRecoveryRequestRepository) Transition(ctx context.Context, id uuid.UUID, target entities.RecoveryStatus) error {
	args := m.Called(ctx, id, target)
	return args.Error(0)
}

// MockAuditLogRepository is a mock of AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) Query(ctx context.Context, filter entities.AuditLogFilter) ([]*entities.AuditLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLogEntry), args.Error(1)
}

// MockKYCDocumentRepository is a mock of KYCDocumentRepository
type MockKYCDocumentRepository struct {
	mock.Mock
}

func (m *MockKYCDocumentRepository) Create(ctx context.Context, doc *entities.KYCDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) List(ctx context.Context) ([]*entities.KYCDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KYCDocument), args.Error(1)
}

func (m *MockKYCDocumentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.KYCDocument, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KYCDocument), args.Error(1)
}

// MockSettingRepository is a mock of SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Setting), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
