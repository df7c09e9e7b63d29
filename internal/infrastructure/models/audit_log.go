package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only; there is no update or delete path.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Action     string    `gorm:"type:varchar(50);not null;index"`
	TargetType *string   `gorm:"type:varchar(30)"`
	TargetID   *string   `gorm:"type:varchar(64)"`
	Detail     *string   `gorm:"type:text"`
	IPAddress  *string   `gorm:"column:ip_address;type:varchar(45)"`
	CreatedAt  time.Time `gorm:"index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
