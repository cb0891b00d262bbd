package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeInput              = "INPUT"
	MovementTypeOutput             = "OUTPUT"
	MovementTypeAdjustmentPositive = "ADJUSTMENT_POSITIVE"
	MovementTypeAdjustmentNegative = "ADJUSTMENT_NEGATIVE"
)

// Categorías de movimiento. Cada tipo admite un subconjunto cerrado (ver MovementCategories).
const (
	CategoryPurchase          = "PURCHASE"
	CategoryDonation          = "DONATION"
	CategoryReturn            = "RETURN"
	CategoryTransfer          = "TRANSFER"
	CategorySale              = "SALE"
	CategoryConsumption       = "CONSUMPTION"
	CategoryCorrection        = "CORRECTION"
	CategoryDueDate           = "DUE_DATE"
	CategoryGeneral           = "GENERAL"
	CategoryLossDamage        = "LOSS_DAMAGE"
	CategoryTheftMisplacement = "THEFT_MISPLACEMENT"
)

var adjustmentCategories = []string{
	CategoryCorrection, CategoryDueDate, CategoryGeneral, CategoryLossDamage, CategoryTheftMisplacement,
}

// MovementCategories categorías válidas por tipo de movimiento.
var MovementCategories = map[string][]string{
	MovementTypeInput:              {CategoryPurchase, CategoryDonation, CategoryReturn, CategoryTransfer},
	MovementTypeOutput:             {CategorySale, CategoryConsumption, CategoryDonation, CategoryReturn, CategoryTransfer},
	MovementTypeAdjustmentPositive: adjustmentCategories,
	MovementTypeAdjustmentNegative: adjustmentCategories,
}

// ValidCategory indica si category pertenece al subconjunto del tipo.
func ValidCategory(movementType, category string) bool {
	for _, c := range MovementCategories[movementType] {
		if c == category {
			return true
		}
	}
	return false
}

// StockMovement registro inmutable de un cambio de cantidad.
// Quantity y Unit son los declarados en la operación, no los del producto.
type StockMovement struct {
	ID               int64
	OperationID      string
	ProductID        int64
	Quantity         decimal.Decimal
	Unit             unit.Unit
	MovementType     string
	MovementCategory string
	Observation      string
	CreatedBy        string
	CreatedAt        time.Time
}
