package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/donaciones-api/internal/domain"
)

// SQLSTATE que el libro distingue.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeLockNotAvailable    = "55P03"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// ledgerError traduce las violaciones de constraints del esquema a errores del libro.
// Los CHECK de la tabla respaldan las validaciones de la aplicación; si alguno salta,
// la transacción igual se revierte y el usuario recibe el error de negocio.
func ledgerError(err error, onFK error) error {
	switch pgCode(err) {
	case codeCheckViolation:
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		if pgErr.ConstraintName == "products_quantity_check" {
			return domain.ErrInsufficientStock
		}
		return domain.ErrInvalidInput
	case codeForeignKeyViolation:
		if onFK != nil {
			return onFK
		}
	case codeUniqueViolation:
		return domain.ErrDuplicate
	}
	return nil
}
