package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	ProductType string // DONATED, PURCHASED o vacío
	Search      string // coincidencia parcial por nombre
	Limit       int    // 0 = sin límite
	Offset      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// UpdateQuantity es la única escritura de Quantity; solo la usa el libro de movimientos.
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// ListExpiringBefore productos con fecha de validez <= cutoff.
	ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]*entity.Product, error)
}
