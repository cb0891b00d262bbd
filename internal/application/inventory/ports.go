package inventory

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

// TxFunc trabajo de una operación del libro: recibe repositorios atados a la transacción en curso.
type TxFunc func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
) error

// TxRunner unidad de trabajo del libro. Si fn devuelve error o el contexto se cancela se revierte
// todo: nunca queda un movimiento sin su saldo ni su fila de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
}
