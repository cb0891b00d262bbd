package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo movimientos de stock sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el repo. Pasar pool o tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (operation_id, product_id, quantity, unit, movement_type,
			movement_category, observation, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.OperationID, m.ProductID, m.Quantity, string(m.Unit), m.MovementType,
		m.MovementCategory, m.Observation, m.CreatedBy, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if lerr := ledgerError(err, domain.ErrProductNotFound); lerr != nil {
			return fmt.Errorf("insert stock movement: %w: %w", lerr, err)
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct historial del producto, más antiguo primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, operation_id, product_id, quantity, unit, movement_type, movement_category,
			observation, created_by, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY created_at, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m entity.StockMovement
			u string
		)
		if err := rows.Scan(&m.ID, &m.OperationID, &m.ProductID, &m.Quantity, &u, &m.MovementType,
			&m.MovementCategory, &m.Observation, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Unit = unit.Unit(u)
		list = append(list, &m)
	}
	return list, rows.Err()
}
