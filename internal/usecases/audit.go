package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"ledger-recovery.backend/internal/domain/entities"
	"ledger-recovery.backend/internal/domain/repositories"
	"ledger-recovery.backend/pkg/logger"
	"ledger-recovery.backend/pkg/metrics"
)

// appendAudit journals a mutating action. A failed write never rolls the
// mutation back; it is surfaced to operators through the error log and
// the audit failure counter instead.
func appendAudit(ctx context.Context, repo repositories.AuditLogRepository, actorID uuid.UUID, action, targetType, targetID, detail, ip string) {
	entry := &entities.AuditLogEntry{
		ActorID:    actorID,
		Action:     action,
		TargetType: null.NewString(targetType, targetType != ""),
		TargetID:   null.NewString(targetID, targetID != ""),
		Detail:     null.NewString(detail, detail != ""),
		IPAddress:  null.NewString(ip, ip != ""),
	}
	if err := repo.Append(ctx, entry); err != nil {
		metrics.AuditWriteFailures.Inc()
		logger.Error(ctx, "audit write failed",
			zap.String("action", action),
			zap.String("actor_id", actorID.String()),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
	}
}
