package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecoveryType represents the kind of recovery/service request submitted
type RecoveryType string

const (
	RecoveryTypeWallet     RecoveryType = "wallet"
	RecoveryTypeSeedPhrase RecoveryType = "seed-phrase"
	RecoveryTypePassword   RecoveryType = "password"
	RecoveryTypeService    RecoveryType = "client-service-request"
)

// RecoveryStatus represents a request's processing state
type RecoveryStatus string

const (
	RecoveryStatusPending  RecoveryStatus = "pending"
	RecoveryStatusInReview RecoveryStatus = "in-review"
	RecoveryStatusResolved RecoveryStatus = "resolved"
	RecoveryStatusRejected RecoveryStatus = "rejected"
)

// Valid reports whether the status is a known value.
func (s RecoveryStatus) Valid() bool {
	switch s {
	case RecoveryStatusPending, RecoveryStatusInReview, RecoveryStatusResolved, RecoveryStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s RecoveryStatus) Terminal() bool {
	return s == RecoveryStatusResolved || s == RecoveryStatusRejected
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s RecoveryStatus) CanTransitionTo(target RecoveryStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case RecoveryStatusPending:
		return target == RecoveryStatusInReview || target == RecoveryStatusResolved || target == RecoveryStatusRejected
	case RecoveryStatusInReview:
		return target == RecoveryStatusResolved || target == RecoveryStatusRejected
	}
	return false
}

// RecoveryRequest is a publicly submitted recovery/service request.
// Append-and-transition only; never deleted.
type RecoveryRequest struct {
	ID        uuid.UUID         `json:"id"`
	Type      RecoveryType      `json:"type"`
	Email     string            `json:"email"`
	Payload   map[string]string `json:"payload"`
	Status    RecoveryStatus    `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// WalletRecoveryInput is the public lost-wallet intake form.
type WalletRecoveryInput struct {
	Email           string `json:"email" binding:"required,email"`
	WalletType      string `json:"walletType" binding:"required"`
	WalletAddress   string `json:"walletAddress"`
	LastTransaction string `json:"lastTransaction"`
	Description     string `json:"description"`
	ContactInfo     string `json:"contactInfo"`
}

// SeedPhraseRecoveryInput is the public partial-seed-phrase intake form.
type SeedPhraseRecoveryInput struct {
	Email            string `json:"email" binding:"required,email"`
	PartialWords     string `json:"partialWords" binding:"required"`
	WordCount        int    `json:"wordCount" binding:"required"`
	ApproximateOrder string `json:"approximateOrder"`
	Hints            string `json:"hints"`
}

// PasswordRecoveryInput is the public forgotten-password intake form.
type PasswordRecoveryInput struct {
	Email         string `json:"email" binding:"required,email"`
	PasswordHints string `json:"passwordHints" binding:"required"`
	Variations    string `json:"variations"`
	ContextInfo   string `json:"contextInfo"`
}

// ServiceRequestInput is the generic client service-request intake form.
type ServiceRequestInput struct {
	ServiceType        string  `json:"serviceType" binding:"required"`
	ClientName         string  `json:"clientName" binding:"required"`
	ClientEmail        string  `json:"clientEmail" binding:"required,email"`
	PhoneNumber        string  `json:"phoneNumber"`
	WalletType         string  `json:"walletType"`
	ProblemDescription string  `json:"problemDescription" binding:"required"`
	UrgencyLevel       string  `json:"urgencyLevel"`
	EstimatedValue     float64 `json:"estimatedValue"`
}

// TransitionInput carries an admin recovery-status transition.
type TransitionInput struct {
	Status RecoveryStatus `json:"status" binding:"required"`
}
