package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Audit action labels written by the mutating components.
const (
	AuditActionAdminLogin     = "admin_login"
	AuditActionAdminLogout    = "admin_logout"
	AuditActionDashboardView  = "dashboard_view"
	AuditActionNoteAdd        = "note_add"
	AuditActionStatusUpdate   = "status_update"
	AuditActionRiskUpdate     = "risk_update"
	AuditActionBalancesUpdate = "balances_update"
	AuditActionPasswordReset  = "password_reset"
	AuditActionTaxUpdate      = "tax_update"
	AuditActionSellerAssign   = "seller_assign"
	AuditActionAmountUpdate   = "amount_update"
	AuditActionPaymentMessage = "payment_message"
	AuditActionRecoveryStatus = "recovery_status_update"
)

// AuditLogEntry is an append-only record of a state-mutating
// administrative or seller action. Created once, never modified.
type AuditLogEntry struct {
	ID         uuid.UUID   `json:"id"`
	ActorID    uuid.UUID   `json:"actorId"`
	Action     string      `json:"action"`
	TargetType null.String `json:"targetType,omitempty"`
	TargetID   null.String `json:"targetId,omitempty"`
	Detail     null.String `json:"detail,omitempty"`
	IPAddress  null.String `json:"ipAddress,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// AuditLogFilter narrows an audit log query. Zero values match everything.
type AuditLogFilter struct {
	ActorID uuid.UUID
	Action  string
	Limit   int
	Offset  int
}
