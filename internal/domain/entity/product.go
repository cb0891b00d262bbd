package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// Tipos de procedencia del producto.
const (
	ProductTypeDonated   = "DONATED"
	ProductTypePurchased = "PURCHASED"
)

// Product representa un lote de producto en inventario.
// Quantity solo la modifica el libro de movimientos; InitialQuantity es el saldo con que se registró.
type Product struct {
	ID               int64
	Name             string
	Quantity         decimal.Decimal // siempre >= 0, expresado en Unit
	InitialQuantity  decimal.Decimal
	Unit             unit.Unit
	UnitWeight       *decimal.Decimal // peso/volumen de un ítem cuando Unit = UN
	UnitOfUnitWeight unit.Unit        // KG, G o L
	ValidityDate     time.Time
	Lot              string
	DonorID          *int64
	SupplierID       *int64
	ReceiverID       string
	ProductType      string // DONATED, PURCHASED
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UnitOptions devuelve el ancla del producto como opciones de conversión.
func (p *Product) UnitOptions() unit.Options {
	if p.UnitWeight == nil || p.UnitOfUnitWeight == "" {
		return unit.Options{}
	}
	w := *p.UnitWeight
	return unit.Options{UnitWeight: &w, UnitWeightUnit: p.UnitOfUnitWeight}
}
