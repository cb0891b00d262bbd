// Package unit implementa el motor de conversión de unidades del inventario.
//
// Las unidades se dividen en familias que nunca se mezclan: masa (KG, G), volumen (L)
// y discreta (UN). Una unidad discreta solo se convierte a masa o volumen a través de
// su ancla (peso o volumen de un ítem).
package unit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
)

// Unit símbolo de unidad de medida tal como se persiste.
type Unit string

const (
	KG Unit = "KG"
	G  Unit = "G"
	L  Unit = "L"
	UN Unit = "UN"
)

// Family agrupa unidades convertibles entre sí por factor fijo.
type Family int

const (
	FamilyMass Family = iota + 1
	FamilyVolume
	FamilyDiscrete
)

func (f Family) String() string {
	switch f {
	case FamilyMass:
		return "masa"
	case FamilyVolume:
		return "volumen"
	case FamilyDiscrete:
		return "discreta"
	default:
		return "desconocida"
	}
}

type definition struct {
	family Family
	factor decimal.Decimal // factor hacia la base de su familia (KG o L)
}

var table = map[Unit]definition{
	KG: {family: FamilyMass, factor: decimal.NewFromInt(1)},
	G:  {family: FamilyMass, factor: decimal.New(1, -3)},
	L:  {family: FamilyVolume, factor: decimal.NewFromInt(1)},
	UN: {family: FamilyDiscrete},
}

// Parse normaliza un símbolo ("kg ", "Kg") y devuelve ErrUnknownUnit si no está registrado.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := table[u]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownUnit, s)
	}
	return u, nil
}

// Valid indica si la unidad está registrada.
func (u Unit) Valid() bool {
	_, ok := table[u]
	return ok
}

// IsDiscrete indica si la unidad es de conteo (UN).
func (u Unit) IsDiscrete() bool {
	return u == UN
}

// Family devuelve la familia de la unidad o ErrUnknownUnit.
func (u Unit) Family() (Family, error) {
	d, ok := table[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, string(u))
	}
	return d.family, nil
}

func (u Unit) String() string { return string(u) }

// CheckCompatible valida que una unidad de movimiento pueda aplicarse a un producto
// almacenado en productUnit. Ambas deben coincidir en "discreción" (las dos UN o ninguna)
// y, fuera de UN, pertenecer a la misma familia: "5 L" nunca se aplica a un producto en KG.
func CheckCompatible(movementUnit, productUnit Unit) error {
	mf, err := movementUnit.Family()
	if err != nil {
		return err
	}
	pf, err := productUnit.Family()
	if err != nil {
		return err
	}
	if movementUnit.IsDiscrete() != productUnit.IsDiscrete() || mf != pf {
		return fmt.Errorf("%w: %s (%s) contra %s (%s)", domain.ErrIncompatibleUnit, movementUnit, mf, productUnit, pf)
	}
	return nil
}
