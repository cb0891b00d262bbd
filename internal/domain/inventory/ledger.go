// Package inventory contiene los servicios de dominio del libro de cantidades.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// StorageScale decimales con que se guardan saldos y deltas (NUMERIC(18,6)).
const StorageScale = 6

// Sign devuelve +1 para entradas y ajustes positivos, -1 para salidas y ajustes negativos.
func Sign(movementType string) (int, error) {
	switch movementType {
	case entity.MovementTypeInput, entity.MovementTypeAdjustmentPositive:
		return 1, nil
	case entity.MovementTypeOutput, entity.MovementTypeAdjustmentNegative:
		return -1, nil
	}
	return 0, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, movementType)
}

// Apply calcula el nuevo saldo a partir del saldo actual y una cantidad ya convertida
// a la unidad del producto. Nunca devuelve un saldo negativo: ErrInsufficientStock.
func Apply(current, quantity decimal.Decimal, movementType string) (decimal.Decimal, error) {
	sign, err := Sign(movementType)
	if err != nil {
		return decimal.Zero, err
	}
	next := current.Add(quantity.Mul(decimal.NewFromInt(int64(sign))))
	if next.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: saldo %s, solicitado %s", domain.ErrInsufficientStock, current, quantity)
	}
	return next, nil
}

// ConvertDelta lleva la cantidad de un movimiento a la unidad del producto, redondeada a
// StorageScale. Registrar y reconstruir pasan por aquí, así el saldo guardado y el
// recalculado usan exactamente el mismo delta. Un delta que redondea a cero es ErrInvalidInput.
func ConvertDelta(p *entity.Product, q decimal.Decimal, u unit.Unit) (decimal.Decimal, error) {
	converted, err := unit.Convert(q, u, p.Unit, p.UnitOptions())
	if err != nil {
		return decimal.Zero, err
	}
	converted = converted.Round(StorageScale)
	if !converted.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s %s no alcanza el mínimo registrable en %s", domain.ErrInvalidInput, q, u, p.Unit)
	}
	return converted, nil
}

// SignedDelta convierte un movimiento a la unidad del producto y le aplica el signo de su tipo.
func SignedDelta(p *entity.Product, m *entity.StockMovement) (decimal.Decimal, error) {
	sign, err := Sign(m.MovementType)
	if err != nil {
		return decimal.Zero, err
	}
	q, err := ConvertDelta(p, m.Quantity, m.Unit)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Mul(decimal.NewFromInt(int64(sign))), nil
}

// Reconstruct recalcula el saldo como InitialQuantity + Σ deltas firmados y convertidos.
func Reconstruct(p *entity.Product, movements []*entity.StockMovement) (decimal.Decimal, error) {
	balance := p.InitialQuantity
	for _, m := range movements {
		d, err := SignedDelta(p, m)
		if err != nil {
			return decimal.Zero, fmt.Errorf("movimiento %d: %w", m.ID, err)
		}
		balance = balance.Add(d)
	}
	return balance, nil
}
