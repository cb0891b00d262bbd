// Package quantity reduce cantidades en unidades mezcladas a un triple canónico
// {peso en KG, volumen en L, unidades sueltas} y lo formatea para mostrar.
package quantity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// Totals triple canónico. Peso y volumen nunca se suman entre sí.
type Totals struct {
	Weight decimal.Decimal // KG
	Volume decimal.Decimal // L
	Units  decimal.Decimal // UN sin ancla
}

// Add suma campo a campo.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Weight: t.Weight.Add(o.Weight),
		Volume: t.Volume.Add(o.Volume),
		Units:  t.Units.Add(o.Units),
	}
}

// IsZero indica si los tres campos son cero.
func (t Totals) IsZero() bool {
	return t.Weight.IsZero() && t.Volume.IsZero() && t.Units.IsZero()
}

// Normalize lleva una cantidad a Totals. Exactamente un campo queda poblado:
// UN con ancla se pliega a peso o volumen según la familia del ancla; UN sin ancla queda en Units.
// Una unidad no registrada devuelve Totals en cero y ErrUnknownUnit.
func Normalize(q decimal.Decimal, u unit.Unit, unitWeight *decimal.Decimal, unitWeightUnit unit.Unit) (Totals, error) {
	family, err := u.Family()
	if err != nil {
		return Totals{}, err
	}
	opts := unit.Options{UnitWeight: unitWeight, UnitWeightUnit: unitWeightUnit}

	if family == unit.FamilyDiscrete {
		if !opts.HasAnchor() {
			return Totals{Units: q}, nil
		}
		af, err := unitWeightUnit.Family()
		if err != nil {
			return Totals{}, err
		}
		family = af
	}

	switch family {
	case unit.FamilyMass:
		w, err := unit.Convert(q, u, unit.KG, opts)
		if err != nil {
			return Totals{}, err
		}
		return Totals{Weight: w}, nil
	case unit.FamilyVolume:
		v, err := unit.Convert(q, u, unit.L, opts)
		if err != nil {
			return Totals{}, err
		}
		return Totals{Volume: v}, nil
	}
	return Totals{}, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, string(u))
}

// Item cantidad a agregar.
type Item struct {
	Label          string
	Quantity       decimal.Decimal
	Unit           unit.Unit
	UnitWeight     *decimal.Decimal
	UnitWeightUnit unit.Unit
}

// Summary resultado de Aggregate. Warnings lista los ítems que no pudieron normalizarse.
type Summary struct {
	Totals   Totals
	Warnings []string
}

// Aggregate suma los ítems campo a campo. Un ítem inválido aporta cero y deja una advertencia.
func Aggregate(items []Item) Summary {
	var s Summary
	for _, it := range items {
		t, err := Normalize(it.Quantity, it.Unit, it.UnitWeight, it.UnitWeightUnit)
		if err != nil {
			s.Warnings = append(s.Warnings, fmt.Sprintf("%s: no se pudo totalizar %s %s (%v)", it.Label, it.Quantity, it.Unit, err))
			continue
		}
		s.Totals = s.Totals.Add(t)
	}
	return s
}
