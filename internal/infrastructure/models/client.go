package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is the client registry row. Balances are stored as a JSON text
// column so the same model works on postgres and the sqlite test driver.
type Client struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Balances         string    `gorm:"type:text;not null"`
	Amount           int64     `gorm:"not null;default:0"`
	RiskLevel        string    `gorm:"type:varchar(10);not null;default:'medium'"`
	IsActive         bool      `gorm:"not null;default:true"`
	KYCCompleted     bool      `gorm:"column:kyc_completed;not null;default:false"`
	KYCFileName      *string   `gorm:"column:kyc_file_name;type:varchar(255)"`
	OnboardingDone   bool      `gorm:"not null;default:false"`
	AssignedSellerID *string   `gorm:"type:uuid;index"`
	TaxPercentage    float64   `gorm:"not null;default:0"`
	TaxCurrency      string    `gorm:"type:varchar(10);not null;default:'BTC'"`
	TaxStatus        string    `gorm:"type:varchar(20);not null;default:'unpaid'"`
	TaxWalletAddress *string   `gorm:"type:varchar(255)"`
	LastConnection   *time.Time
	LastIP           *string `gorm:"column:last_ip;type:varchar(45)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Client) TableName() string {
	return "clients"
}

type AdminNote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (AdminNote) TableName() string {
	return "admin_notes"
}

type PaymentMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	SellerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (PaymentMessage) TableName() string {
	return "payment_messages"
}
