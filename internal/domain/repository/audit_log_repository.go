package repository

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// AuditLogRepository puerto de la bitácora de auditoría (solo inserción).
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}
