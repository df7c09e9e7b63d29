package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"ledger-recovery.backend/internal/domain/entities"
	"ledger-recovery.backend/internal/infrastructure/models"
)

const defaultAuditQueryLimit = 500

// AuditLogRepository implements the append-only audit trail. Appends are
// independent inserts; readers never block writers.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Append writes one audit entry
func (r *AuditLogRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m := &models.AuditLog{
		ID:        entry.ID,
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		CreatedAt: entry.CreatedAt,
	}
	if entry.TargetType.Valid {
		m.TargetType = &entry.TargetType.String
	}
	if entry.TargetID.Valid {
		m.TargetID = &entry.TargetID.String
	}
	if entry.Detail.Valid {
		m.Detail = &entry.Detail.String
	}
	if entry.IPAddress.Valid {
		m.IPAddress = &entry.IPAddress.String
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Query returns entries matching the filter, timestamp ascending,
// bounded per call so a caller can page through and restart.
func (r *AuditLogRepository) Query(ctx context.Context, filter entities.AuditLogFilter) ([]*entities.AuditLogEntry, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if filter.ActorID != uuid.Nil {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	limit := filter.Limit
	if limit <= 0 || limit > defaultAuditQueryLimit {
		limit = defaultAuditQueryLimit
	}
	query = query.Limit(limit)
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var logModels []models.AuditLog
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.AuditLogEntry, 0, len(logModels))
	for i := range logModels {
		out = append(out, auditToEntity(&logModels[i]))
	}
	return out, nil
}

func auditToEntity(m *models.AuditLog) *entities.AuditLogEntry {
	e := &entities.AuditLogEntry{
		ID:        m.ID,
		ActorID:   m.ActorID,
		Action:    m.Action,
		CreatedAt: m.CreatedAt,
	}
	if m.TargetType != nil {
		e.TargetType.SetValid(*m.TargetType)
	}
	if m.TargetID != nil {
		e.TargetID.SetValid(*m.TargetID)
	}
	if m.Detail != nil {
		e.Detail.SetValid(*m.Detail)
	}
	if m.IPAddress != nil {
		e.IPAddress.SetValid(*m.IPAddress)
	}
	return e
}
