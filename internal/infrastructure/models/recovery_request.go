package models

import (
	"time"

	"github.com/google/uuid"
)

// RecoveryRequest stores a public recovery/service submission. The
// type-specific payload is kept as a JSON text column.
type RecoveryRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(30);not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Payload   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(15);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecoveryRequest) TableName() string {
	return "recovery_requests"
}
