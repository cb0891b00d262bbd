package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"fecha de formulario", `"2026-10-20"`, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2026-10-20T00:00:00Z"`, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)},
		{"nula", `null`, time.Time{}},
		{"vacía", `""`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d dto.Date
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.True(t, d.Equal(tc.want), "got %s", d.Time)
		})
	}

	var d dto.Date
	assert.Error(t, json.Unmarshal([]byte(`"20/10/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20261020`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(dto.CreateProductRequest{ValidityDate: dto.Date{Time: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"validity_date":"2026-10-20"`)
}
