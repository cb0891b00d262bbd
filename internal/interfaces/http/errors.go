package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/domain"
)

// apiError traducción de un error de dominio para el usuario.
type apiError struct {
	status      int
	code        string
	title       string
	description string
}

var errorTable = []struct {
	target error
	out    apiError
}{
	{domain.ErrInvalidInput, apiError{fiber.StatusBadRequest, "VALIDATION", "Datos inválidos", "Revise la cantidad, la unidad y la categoría."}},
	{domain.ErrUnknownUnit, apiError{fiber.StatusBadRequest, "UNKNOWN_UNIT", "Unidad desconocida", "Las unidades válidas son KG, G, L y UN."}},
	{domain.ErrUnauthorized, apiError{fiber.StatusUnauthorized, "UNAUTHORIZED", "Sesión requerida", "Inicie sesión para registrar movimientos."}},
	{domain.ErrProductNotFound, apiError{fiber.StatusNotFound, "PRODUCT_NOT_FOUND", "Producto no encontrado", "El producto no existe o fue eliminado."}},
	{domain.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "No encontrado", "El recurso solicitado no existe."}},
	{domain.ErrInsufficientStock, apiError{fiber.StatusConflict, "INSUFFICIENT_STOCK", "Stock insuficiente", "La cantidad solicitada supera el saldo disponible."}},
	{domain.ErrDuplicate, apiError{fiber.StatusConflict, "DUPLICATE", "Registro duplicado", "El registro ya existe."}},
	{domain.ErrIncompatibleUnit, apiError{fiber.StatusUnprocessableEntity, "INCOMPATIBLE_UNIT", "Unidad incompatible", "La unidad del movimiento no corresponde a la del producto."}},
	{domain.ErrInvalidConversion, apiError{fiber.StatusUnprocessableEntity, "INVALID_CONVERSION", "Conversión inválida", "El producto no tiene peso por unidad para convertir UN."}},
}

var internalError = apiError{fiber.StatusInternalServerError, "INTERNAL", "Error interno", "No se pudo completar la operación; no se guardó ningún cambio."}

func classify(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.out
		}
	}
	return internalError
}

// writeError responde ErrorResponse. El detalle de errores internos solo va al log.
func writeError(c *fiber.Ctx, err error) error {
	e := classify(err)
	msg := err.Error()
	if e.status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		msg = e.description
	}
	return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: msg})
}

// writeActionError responde el ActionResult fallido de una acción del libro.
func writeActionError(c *fiber.Ctx, err error) error {
	e := classify(err)
	if e.status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("acción de inventario fallida")
	}
	return c.Status(e.status).JSON(dto.ActionResult{
		Success:     false,
		Code:        e.code,
		Title:       e.title,
		Description: e.description,
	})
}

// ErrorHandler manejador de errores de fiber: respaldo para lo que no atrapan los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
