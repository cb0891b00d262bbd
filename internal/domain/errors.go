package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("registro duplicado")

	// Errores del motor de conversión de unidades.
	ErrIncompatibleUnit  = errors.New("unidad incompatible con la del producto")
	ErrUnknownUnit       = errors.New("unidad desconocida")
	ErrInvalidConversion = errors.New("conversión inválida: falta el peso por unidad")

	// ErrPersistence envuelve fallas de la base de datos (la transacción se revierte completa).
	ErrPersistence = errors.New("error de persistencia")
)

// IsLedgerError indica si err es uno de los errores esperados del libro de inventario
// (no una falla de infraestructura).
func IsLedgerError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrProductNotFound, ErrInvalidInput, ErrUnauthorized, ErrInsufficientStock, ErrDuplicate,
		ErrIncompatibleUnit, ErrUnknownUnit, ErrInvalidConversion, ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
