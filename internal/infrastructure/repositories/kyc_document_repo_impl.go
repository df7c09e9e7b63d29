package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/infrastructure/models"
)

// KYCDocumentRepository implements KYC document metadata storage
type KYCDocumentRepository struct {
	db *gorm.DB
}

// NewKYCDocumentRepository creates a new KYC document repository
func NewKYCDocumentRepository(db *gorm.DB) *KYCDocumentRepository {
	return &KYCDocumentRepository{db: db}
}

// Create stores document metadata
func (r *KYCDocumentRepository) Create(ctx context.Context, doc *entities.KYCDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}
	if doc.Status == "" {
		doc.Status = entities.KYCDocumentPending
	}
	m := &models.KYCDocument{
		ID:          doc.ID,
		ClientID:    doc.ClientID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		Status:      string(doc.Status),
		UploadedAt:  doc.UploadedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List lists all document metadata, newest first
func (r *KYCDocumentRepository) List(ctx context.Context) ([]*entities.KYCDocument, error) {
	var docModels []models.KYCDocument
	if err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&docModels).Error; err != nil {
		return nil, err
	}
	return kycDocsToEntities(docModels), nil
}

// ListByClient lists a client's document metadata, newest first
func (r *KYCDocumentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.KYCDocument, error) {
	var docModels []models.KYCDocument
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("uploaded_at DESC").Find(&docModels).Error; err != nil {
		return nil, err
	}
	return kycDocsToEntities(docModels), nil
}

func kycDocsToEntities(docModels []models.KYCDocument) []*entities.KYCDocument {
	out := make([]*entities.KYCDocument, 0, len(docModels))
	for i := range docModels {
		m := docModels[i]
		out = append(out, &entities.KYCDocument{
			ID:          m.ID,
			ClientID:    m.ClientID,
			FileName:    m.FileName,
			ContentType: m.ContentType,
			SizeBytes:   m.SizeBytes,
			Status:      entities.KYCDocumentStatus(m.Status),
			UploadedAt:  m.UploadedAt,
		})
	}
	return out
}

// SettingRepository implements keyed platform settings
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the setting for key
func (r *SettingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	var m models.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Setting{Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt}, nil
}

// Set upserts the setting for key
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Setting{}).Where("key = ?", key).Updates(map[string]interface{}{
		"value":      value,
		"updated_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.Setting{Key: key, Value: value, UpdatedAt: now}).Error
}
