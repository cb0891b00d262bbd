package repository

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia de movimientos. Solo inserta y lee: los movimientos son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devuelve el historial en orden cronológico (más antiguo primero).
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error)
}
