package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/domain"
)

func TestQueryTracer(t *testing.T) {
	assert.Nil(t, queryTracer("none", zerolog.Nop()))
	assert.Nil(t, queryTracer("ruidoso", zerolog.Nop()))

	var buf bytes.Buffer
	tr := queryTracer("warn", zerolog.New(&buf))
	require.NotNil(t, tr)
	assert.Equal(t, tracelog.LogLevelWarn, tr.LogLevel)

	tr.Logger.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "SELECT 1"})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
}

func TestLedgerError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		onFK error
		want error
	}{
		{"saldo negativo", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "products_quantity_check"}, nil, domain.ErrInsufficientStock},
		{"otro check", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "products_unit_check"}, nil, domain.ErrInvalidInput},
		{"fk producto", &pgconn.PgError{Code: codeForeignKeyViolation}, domain.ErrProductNotFound, domain.ErrProductNotFound},
		{"unique", &pgconn.PgError{Code: codeUniqueViolation}, nil, domain.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ledgerError(tc.err, tc.onFK), tc.want)
		})
	}

	assert.NoError(t, ledgerError(&pgconn.PgError{Code: codeForeignKeyViolation}, nil))
	assert.NoError(t, ledgerError(assert.AnError, domain.ErrProductNotFound))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: codeUniqueViolation}))
}
