package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
)

func TestParsePositive(t *testing.T) {
	ok := map[string]string{"30": "30", " 2.5 ": "2.5", "2,5": "2.5", "0.001": "0.001", "1.5000": "1.5"}
	for in, want := range ok {
		got, err := quantity.ParsePositive(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	for _, in := range []string{"", "abc", "0", "-3", "1,000.5,2", "1e3", "NaN", "0.0004", "2,1234"} {
		_, err := quantity.ParsePositive(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
	}
}

func TestParse_CeroPermitido(t *testing.T) {
	got, err := quantity.Parse("0")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
