package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/infrastructure/models"
)

// ClientRepository implements client registry operations. Every mutation
// serializes on a per-record mutex so two concurrent edits to the same
// client cannot interleave.
type ClientRepository struct {
	db    *gorm.DB
	locks *recordLocks
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db, locks: newRecordLocks()}
}

// Create creates a new client record
func (r *ClientRepository) Create(ctx context.Context, client *entities.ClientRecord) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	m, err := clientToModel(client)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a client record by ID
func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ClientRecord, error) {
	var m models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return clientToEntity(&m)
}

// GetByUserID gets the client record owned by a user
func (r *ClientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientRecord, error) {
	var m models.Client
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return clientToEntity(&m)
}

// List lists all client records, oldest first
func (r *ClientRepository) List(ctx context.Context) ([]*entities.ClientRecord, error) {
	var clientModels []models.Client
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&clientModels).Error; err != nil {
		return nil, err
	}
	return clientsToEntities(clientModels)
}

// ListBySeller lists the clients assigned to a seller
func (r *ClientRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.ClientRecord, error) {
	var clientModels []models.Client
	if err := r.db.WithContext(ctx).
		Where("assigned_seller_id = ?", sellerID.String()).
		Order("created_at ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}
	return clientsToEntities(clientModels)
}

// ListPendingTaxes lists active clients with an unpaid tax charge
func (r *ClientRepository) ListPendingTaxes(ctx context.Context) ([]*entities.ClientRecord, error) {
	var clientModels []models.Client
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND tax_percentage > 0 AND tax_status = ?", true, string(entities.TaxStatusUnpaid)).
		Order("created_at ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}
	return clientsToEntities(clientModels)
}

// ReplaceBalances replaces the full balance set of a client
func (r *ClientRepository) ReplaceBalances(ctx context.Context, id uuid.UUID, balances entities.Balances) error {
	raw, err := json.Marshal(balances)
	if err != nil {
		return err
	}
	return r.mutate(ctx, id, map[string]interface{}{"balances": string(raw)})
}

// UpdateRiskLevel sets a client's risk level
func (r *ClientRepository) UpdateRiskLevel(ctx context.Context, id uuid.UUID, level entities.RiskLevel) error {
	return r.mutate(ctx, id, map[string]interface{}{"risk_level": string(level)})
}

// UpdateActiveStatus sets a client's active flag
func (r *ClientRepository) UpdateActiveStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	return r.mutate(ctx, id, map[string]interface{}{"is_active": isActive})
}

// UpdateAmount sets the seller-assigned amount
func (r *ClientRepository) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	return r.mutate(ctx, id, map[string]interface{}{"amount": amount})
}

// UpdateAssignedSeller reassigns (or unassigns) a client's seller
func (r *ClientRepository) UpdateAssignedSeller(ctx context.Context, id uuid.UUID, sellerID null.String) error {
	var v interface{}
	if sellerID.Valid {
		v = sellerID.String
	}
	return r.mutate(ctx, id, map[string]interface{}{"assigned_seller_id": v})
}

// UpdateLastConnection records a successful login
func (r *ClientRepository) UpdateLastConnection(ctx context.Context, id uuid.UUID, ip string) error {
	return r.mutate(ctx, id, map[string]interface{}{
		"last_connection": time.Now(),
		"last_ip":         ip,
	})
}

// AddNote appends an admin note
func (r *ClientRepository) AddNote(ctx context.Context, note *entities.AdminNote) error {
	unlock := r.locks.lock(note.ClientID)
	defer unlock()

	if err := r.exists(ctx, note.ClientID); err != nil {
		return err
	}
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	m := &models.AdminNote{
		ID:        note.ID,
		ClientID:  note.ClientID,
		AuthorID:  note.AuthorID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListNotes lists a client's notes in insertion order
func (r *ClientRepository) ListNotes(ctx context.Context, clientID uuid.UUID) ([]*entities.AdminNote, error) {
	var noteModels []models.AdminNote
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}
	notes := make([]*entities.AdminNote, 0, len(noteModels))
	for i := range noteModels {
		m := noteModels[i]
		notes = append(notes, &entities.AdminNote{
			ID:        m.ID,
			ClientID:  m.ClientID,
			AuthorID:  m.AuthorID,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		})
	}
	return notes, nil
}

// AddPaymentMessage appends a seller payment message
func (r *ClientRepository) AddPaymentMessage(ctx context.Context, msg *entities.PaymentMessage) error {
	unlock := r.locks.lock(msg.ClientID)
	defer unlock()

	if err := r.exists(ctx, msg.ClientID); err != nil {
		return err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	m := &models.PaymentMessage{
		ID:        msg.ID,
		ClientID:  msg.ClientID,
		SellerID:  msg.SellerID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListPaymentMessages lists a client's payment messages in insertion order
func (r *ClientRepository) ListPaymentMessages(ctx context.Context, clientID uuid.UUID) ([]*entities.PaymentMessage, error) {
	var msgModels []models.PaymentMessage
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&msgModels).Error; err != nil {
		return nil, err
	}
	msgs := make([]*entities.PaymentMessage, 0, len(msgModels))
	for i := range msgModels {
		m := msgModels[i]
		msgs = append(msgs, &entities.PaymentMessage{
			ID:        m.ID,
			ClientID:  m.ClientID,
			SellerID:  m.SellerID,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return msgs, nil
}

func (r *ClientRepository) mutate(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	unlock := r.locks.lock(id)
	defer unlock()

	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) exists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func clientToModel(c *entities.ClientRecord) (*models.Client, error) {
	raw, err := json.Marshal(c.Balances)
	if err != nil {
		return nil, err
	}
	m := &models.Client{
		ID:             c.ID,
		UserID:         c.UserID,
		Email:          c.Email,
		Balances:       string(raw),
		Amount:         c.Amount,
		RiskLevel:      string(c.RiskLevel),
		IsActive:       c.IsActive,
		KYCCompleted:   c.KYCCompleted,
		OnboardingDone: c.OnboardingDone,
		TaxPercentage:  c.TaxPercentage,
		TaxCurrency:    c.TaxCurrency,
		TaxStatus:      string(c.TaxStatus),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.KYCFileName.Valid {
		m.KYCFileName = &c.KYCFileName.String
	}
	if c.AssignedSellerID.Valid {
		m.AssignedSellerID = &c.AssignedSellerID.String
	}
	if c.TaxWalletAddress.Valid {
		m.TaxWalletAddress = &c.TaxWalletAddress.String
	}
	if c.LastConnection.Valid {
		t := c.LastConnection.Time
		m.LastConnection = &t
	}
	if c.LastIP.Valid {
		m.LastIP = &c.LastIP.String
	}
	return m, nil
}

func clientToEntity(m *models.Client) (*entities.ClientRecord, error) {
	var balances entities.Balances
	if err := json.Unmarshal([]byte(m.Balances), &balances); err != nil {
		return nil, err
	}
	return &entities.ClientRecord{
		ID:               m.ID,
		UserID:           m.UserID,
		Email:            m.Email,
		Balances:         balances,
		Amount:           m.Amount,
		RiskLevel:        entities.RiskLevel(m.RiskLevel),
		IsActive:         m.IsActive,
		KYCCompleted:     m.KYCCompleted,
		KYCFileName:      null.StringFromPtr(m.KYCFileName),
		OnboardingDone:   m.OnboardingDone,
		AssignedSellerID: null.StringFromPtr(m.AssignedSellerID),
		TaxPercentage:    m.TaxPercentage,
		TaxCurrency:      m.TaxCurrency,
		TaxStatus:        entities.TaxStatus(m.TaxStatus),
		TaxWalletAddress: null.StringFromPtr(m.TaxWalletAddress),
		LastConnection:   null.TimeFromPtr(m.LastConnection),
		LastIP:           null.StringFromPtr(m.LastIP),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func clientsToEntities(clientModels []models.Client) ([]*entities.ClientRecord, error) {
	out := make([]*entities.ClientRecord, 0, len(clientModels))
	for i := range clientModels {
		c, err := clientToEntity(&clientModels[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
