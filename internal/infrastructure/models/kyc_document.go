package models

import (
	"time"

	"github.com/google/uuid"
)

type KYCDocument struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index;not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(15);not null;default:'pending'"`
	UploadedAt  time.Time
}

func (KYCDocument) TableName() string {
	return "kyc_documents"
}

type Setting struct {
	Key       string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Setting) TableName() string {
	return "settings"
}
