package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RiskLevel represents a client's assessed risk level
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Valid reports whether the risk level is a known value.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// TaxStatus represents the payment state of a client's tax charge
type TaxStatus string

const (
	TaxStatusUnpaid   TaxStatus = "unpaid"
	TaxStatusPaid     TaxStatus = "paid"
	TaxStatusExempted TaxStatus = "exempted"
)

// Balances maps a currency symbol to a held amount.
type Balances map[string]float64

// SupportedCurrencies is the set of currency symbols a balance update may
// contain. Anything outside this set is rejected as a validation error.
var SupportedCurrencies = map[string]struct{}{
	"btc": {}, "eth": {}, "usdt": {}, "ada": {}, "dot": {},
	"sol": {}, "link": {}, "matic": {}, "bnb": {}, "xrp": {},
}

// DefaultBalances returns the balance set assigned to a newly registered client.
func DefaultBalances() Balances {
	return Balances{
		"btc": 0.25, "eth": 2.75, "usdt": 5000, "ada": 1500, "dot": 25,
		"sol": 12, "link": 85, "matic": 2500, "bnb": 8.5, "xrp": 3200,
	}
}

// ClientRecord holds a client's financial and status record. Never deleted,
// only deactivated. All mutations go through guarded admin/seller operations.
type ClientRecord struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"userId"`
	Email            string      `json:"email"`
	Balances         Balances    `json:"balances"`
	Amount           int64       `json:"amount"`
	RiskLevel        RiskLevel   `json:"riskLevel"`
	IsActive         bool        `json:"isActive"`
	KYCCompleted     bool        `json:"kycCompleted"`
	KYCFileName      null.String `json:"kycFileName,omitempty"`
	OnboardingDone   bool        `json:"onboardingCompleted"`
	AssignedSellerID null.String `json:"assignedSellerId,omitempty"`
	TaxPercentage    float64     `json:"taxPercentage"`
	TaxCurrency      string      `json:"taxCurrency"`
	TaxStatus        TaxStatus   `json:"taxStatus"`
	TaxWalletAddress null.String `json:"taxWalletAddress,omitempty"`
	LastConnection   null.Time   `json:"lastConnection,omitempty"`
	LastIP           null.String `json:"lastIp,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// AdminNote is a free-text note on a client, append-only, tagged with the author.
type AdminNote struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentMessage is a message a seller sends to an assigned client,
// shown on the client dashboard. Append-only.
type PaymentMessage struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	SellerID  uuid.UUID `json:"sellerId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateBalancesInput carries a full replacement balance set.
type UpdateBalancesInput struct {
	Balances Balances `json:"balances" binding:"required"`
}

// UpdateRiskInput carries a risk level change.
type UpdateRiskInput struct {
	RiskLevel RiskLevel `json:"riskLevel" binding:"required"`
}

// UpdateStatusInput carries an active-flag change.
type UpdateStatusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// AddNoteInput carries a new admin note.
type AddNoteInput struct {
	Note string `json:"note" binding:"required"`
}

// AssignSellerInput carries a seller assignment change. Empty unassigns.
type AssignSellerInput struct {
	SellerID string `json:"sellerId"`
}

// SetAmountInput carries a seller's assigned-amount change.
type SetAmountInput struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// PaymentMessageInput carries a seller payment message.
type PaymentMessageInput struct {
	Message string `json:"message" binding:"required"`
}
