package unit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
)

// Options parámetros opcionales de Convert.
// UnitWeight + UnitWeightUnit forman el ancla de UN (cuánto pesa o mide un ítem).
// Decimals, si no es nil, redondea el resultado (half-up) a esa cantidad de decimales.
type Options struct {
	UnitWeight     *decimal.Decimal
	UnitWeightUnit Unit
	Decimals       *int32
}

// HasAnchor indica si las opciones traen un ancla completa.
func (o Options) HasAnchor() bool {
	return o.UnitWeight != nil && o.UnitWeightUnit != ""
}

// Convert convierte value de from a to.
//
//   - from == to: devuelve value sin cambios.
//   - masa/volumen ↔ masa/volumen: value * factor(from) / factor(to), solo dentro de la misma familia.
//   - UN ↔ masa/volumen: requiere ancla (ErrInvalidConversion si falta).
func Convert(value decimal.Decimal, from, to Unit, opts Options) (decimal.Decimal, error) {
	fromDef, ok := table[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, string(from))
	}
	toDef, ok := table[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, string(to))
	}
	if from == to {
		return round(value, opts), nil
	}

	switch {
	case !from.IsDiscrete() && !to.IsDiscrete():
		if fromDef.family != toDef.family {
			return decimal.Zero, fmt.Errorf("%w: %s (%s) a %s (%s)", domain.ErrIncompatibleUnit, from, fromDef.family, to, toDef.family)
		}
		return round(value.Mul(fromDef.factor).Div(toDef.factor), opts), nil

	case from.IsDiscrete() && !to.IsDiscrete():
		anchor, err := anchorInBase(opts, toDef.family)
		if err != nil {
			return decimal.Zero, err
		}
		return round(value.Mul(anchor).Div(toDef.factor), opts), nil

	case !from.IsDiscrete() && to.IsDiscrete():
		anchor, err := anchorInBase(opts, fromDef.family)
		if err != nil {
			return decimal.Zero, err
		}
		if anchor.IsZero() {
			return decimal.Zero, fmt.Errorf("%w: peso por unidad en cero", domain.ErrInvalidConversion)
		}
		return round(value.Mul(fromDef.factor).Div(anchor), opts), nil
	}

	// UN → UN con distinto símbolo no existe: solo hay una unidad discreta registrada.
	return decimal.Zero, fmt.Errorf("%w: %s a %s", domain.ErrUnknownUnit, from, to)
}

// anchorInBase devuelve el ancla expresada en la base de su familia (KG o L)
// y valida que esa familia coincida con la del otro extremo de la conversión.
func anchorInBase(opts Options, family Family) (decimal.Decimal, error) {
	if !opts.HasAnchor() {
		return decimal.Zero, domain.ErrInvalidConversion
	}
	def, ok := table[opts.UnitWeightUnit]
	if !ok || def.family == FamilyDiscrete {
		return decimal.Zero, fmt.Errorf("%w: unidad de peso por unidad %q", domain.ErrInvalidConversion, string(opts.UnitWeightUnit))
	}
	if def.family != family {
		return decimal.Zero, fmt.Errorf("%w: ancla en %s, destino en %s", domain.ErrIncompatibleUnit, def.family, family)
	}
	return opts.UnitWeight.Mul(def.factor), nil
}

func round(v decimal.Decimal, opts Options) decimal.Decimal {
	if opts.Decimals == nil {
		return v
	}
	return v.Round(*opts.Decimals)
}
