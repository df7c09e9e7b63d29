package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/infrastructure/models"
)

// RecoveryRequestRepository implements the recovery request store.
// Transition holds the per-request lock across the read-check-write so a
// terminal status can never be overwritten by a racing admin.
type RecoveryRequestRepository struct {
	db    *gorm.DB
	locks *recordLocks
}

// NewRecoveryRequestRepository creates a new recovery request repository
func NewRecoveryRequestRepository(db *gorm.DB) *RecoveryRequestRepository {
	return &RecoveryRequestRepository{db: db, locks: newRecordLocks()}
}

// Create stores a newly submitted request with status pending
func (r *RecoveryRequestRepository) Create(ctx context.Context, req *entities.RecoveryRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = entities.RecoveryStatusPending
	}
	raw, err := json.Marshal(req.Payload)
	if err != nil {
		return err
	}
	m := &models.RecoveryRequest{
		ID:        req.ID,
		Type:      string(req.Type),
		Email:     req.Email,
		Payload:   string(raw),
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a request by ID
func (r *RecoveryRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecoveryRequest, error) {
	var m models.RecoveryRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return recoveryToEntity(&m)
}

// List lists all requests, oldest first
func (r *RecoveryRequestRepository) List(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	return r.list(ctx, "")
}

// ListPending lists requests still awaiting review
func (r *RecoveryRequestRepository) ListPending(ctx context.Context) ([]*entities.RecoveryRequest, error) {
	return r.list(ctx, string(entities.RecoveryStatusPending))
}

func (r *RecoveryRequestRepository) list(ctx context.Context, status string) ([]*entities.RecoveryRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reqModels []models.RecoveryRequest
	if err := query.Find(&reqModels).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.RecoveryRequest, 0, len(reqModels))
	for i := range reqModels {
		req, err := recoveryToEntity(&reqModels[i])
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// Transition moves a request to target if the state machine allows it
func (r *RecoveryRequestRepository) Transition(ctx context.Context, id uuid.UUID, target entities.RecoveryStatus) error {
	unlock := r.locks.lock(id)
	defer unlock()

	var m models.RecoveryRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}

	current := entities.RecoveryStatus(m.Status)
	if !current.CanTransitionTo(target) {
		return domainerrors.ErrInvalidTransition
	}

	return r.db.WithContext(ctx).Model(&models.RecoveryRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(target),
		"updated_at": time.Now(),
	}).Error
}

func recoveryToEntity(m *models.RecoveryRequest) (*entities.RecoveryRequest, error) {
	var payload map[string]string
	if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
		return nil, err
	}
	return &entities.RecoveryRequest{
		ID:        m.ID,
		Type:      entities.RecoveryType(m.Type),
		Email:     m.Email,
		Payload:   payload,
		Status:    entities.RecoveryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
