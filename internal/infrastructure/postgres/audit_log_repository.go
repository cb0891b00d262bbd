package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo bitácora de auditoría (solo INSERT).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el repo. Pasar pool o tx.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta la fila de auditoría.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO audit_logs (operation_id, user_id, action, entity, record_changed_id, changed_value, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		l.OperationID, l.UserID, l.Action, l.Entity, l.RecordChangedID, l.ChangedValue, l.Details, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
