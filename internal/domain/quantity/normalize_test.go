package quantity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func assertTotals(t *testing.T, got quantity.Totals, weight, volume, units string) {
	t.Helper()
	assert.True(t, got.Weight.Equal(decimal.RequireFromString(weight)), "weight %s", got.Weight)
	assert.True(t, got.Volume.Equal(decimal.RequireFromString(volume)), "volume %s", got.Volume)
	assert.True(t, got.Units.Equal(decimal.RequireFromString(units)), "units %s", got.Units)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name                  string
		q                     string
		u                     unit.Unit
		uw                    *decimal.Decimal
		uwu                   unit.Unit
		weight, volume, units string
	}{
		{"kg", "3.5", unit.KG, nil, "", "3.5", "0", "0"},
		{"gramos a kg", "750", unit.G, nil, "", "0.75", "0", "0"},
		{"litros", "2", unit.L, nil, "", "0", "2", "0"},
		{"unidades sin ancla", "4", unit.UN, nil, "", "0", "0", "4"},
		{"unidades con ancla en gramos", "10", unit.UN, dp("250"), unit.G, "2.5", "0", "0"},
		{"unidades con ancla en litros", "6", unit.UN, dp("0.5"), unit.L, "0", "3", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := quantity.Normalize(decimal.RequireFromString(tc.q), tc.u, tc.uw, tc.uwu)
			require.NoError(t, err)
			assertTotals(t, got, tc.weight, tc.volume, tc.units)
		})
	}
}

func TestNormalize_UnidadDesconocida(t *testing.T) {
	got, err := quantity.Normalize(decimal.NewFromInt(5), unit.Unit("CX"), nil, "")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	assert.True(t, got.IsZero())
}

func TestAggregate_NoMezclaPesoYVolumen(t *testing.T) {
	items := []quantity.Item{
		{Label: "Arroz", Quantity: decimal.RequireFromString("100"), Unit: unit.KG},
		{Label: "Frijol", Quantity: decimal.RequireFromString("250"), Unit: unit.G},
		{Label: "Leche", Quantity: decimal.RequireFromString("12"), Unit: unit.L},
		{Label: "Galletas", Quantity: decimal.RequireFromString("10"), Unit: unit.UN, UnitWeight: dp("200"), UnitWeightUnit: unit.G},
		{Label: "Cepillos", Quantity: decimal.RequireFromString("7"), Unit: unit.UN},
	}
	s := quantity.Aggregate(items)
	assert.Empty(t, s.Warnings)
	assertTotals(t, s.Totals, "102.25", "12", "7")
}

func TestAggregate_AdvierteYContinua(t *testing.T) {
	items := []quantity.Item{
		{Label: "Arroz", Quantity: decimal.RequireFromString("1"), Unit: unit.KG},
		{Label: "Caja rara", Quantity: decimal.RequireFromString("3"), Unit: unit.Unit("CX")},
	}
	s := quantity.Aggregate(items)
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "Caja rara")
	assertTotals(t, s.Totals, "1", "0", "0")
}
