package quantity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
)

// InputScale máximo de decimales que acepta una cantidad escrita por el usuario.
// Con G -> KG la conversión suma tres dígitos y sigue cabiendo en NUMERIC(18,6).
const InputScale = 3

// Parse convierte la cantidad textual de un formulario en decimal.
// Acepta coma decimal ("2,5") cuando no hay punto. Errores: ErrInvalidInput.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: cantidad vacía", domain.ErrInvalidInput)
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, s)
	}
	if !v.Equal(v.Truncate(InputScale)) {
		return decimal.Zero, fmt.Errorf("%w: cantidad %q admite a lo sumo %d decimales", domain.ErrInvalidInput, s, InputScale)
	}
	return v, nil
}

// ParsePositive como Parse pero exige un valor mayor que cero.
func ParsePositive(s string) (decimal.Decimal, error) {
	v, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return v, nil
}
