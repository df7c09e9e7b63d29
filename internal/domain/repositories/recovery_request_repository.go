package repositories

import (
	"context"

	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
)

// RecoveryRequestRepository defines recovery request store operations.
// Append-and-transition only; requests are never deleted. Transition is
// serialized per request and enforces the status state machine.
type RecoveryRequestRepository interface {
	Create(ctx context.Context, req *entities.RecoveryRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RecoveryRequest, error)
	List(ctx context.Context) ([]*entities.RecoveryRequest, error)
	ListPending(ctx context.Context) ([]*entities.RecoveryRequest, error)
	Transition(ctx context.Context, id uuid.UUID, target entities.RecoveryStatus) error
}

// AuditLogRepository defines append-only audit trail operations.
// Append never rolls back the mutation that triggered it; query results
// are ordered by timestamp ascending and bounded per call.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entities.AuditLogEntry) error
	Query(ctx context.Context, filter entities.AuditLogFilter) ([]*entities.AuditLogEntry, error)
}
