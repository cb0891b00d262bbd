package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos del libro y los totales (protegido).
type InventoryHandler struct {
	uc     *inventory.RegisterMovementUseCase
	totals *inventory.TotalsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase, totals *inventory.TotalsUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, totals: totals}
}

// RegisterInput godoc
// @Summary      Registrar entrada
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity, unit, category (PURCHASE|DONATION|RETURN|TRANSFER)"
// @Success      201   {object}  dto.ActionResult
// @Failure      400   {object}  dto.ActionResult
// @Failure      404   {object}  dto.ActionResult
// @Failure      422   {object}  dto.ActionResult
// @Router       /api/inventory/inputs [post]
func (h *InventoryHandler) RegisterInput(c *fiber.Ctx) error {
	return h.register(c, "input", "Entrada registrada")
}

// RegisterOutput godoc
// @Summary      Registrar salida
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity, unit, category (SALE|CONSUMPTION|DONATION|RETURN|TRANSFER)"
// @Success      201   {object}  dto.ActionResult
// @Failure      409   {object}  dto.ActionResult
// @Router       /api/inventory/outputs [post]
func (h *InventoryHandler) RegisterOutput(c *fiber.Ctx) error {
	return h.register(c, "output", "Salida registrada")
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "sign POSITIVE|NEGATIVE; category CORRECTION|DUE_DATE|GENERAL|LOSS_DAMAGE|THEFT_MISPLACEMENT"
// @Success      201   {object}  dto.ActionResult
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	return h.register(c, "adjustment", "Ajuste registrado")
}

func (h *InventoryHandler) register(c *fiber.Ctx, kind, title string) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ActionResult{
			Code: "INVALID_BODY", Title: "Solicitud inválida", Description: "El cuerpo de la solicitud no es JSON válido.",
		})
	}
	out, err := h.uc.RegisterFromRequest(c.UserContext(), kind, in)
	if err != nil {
		return writeActionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResult{
		Success:     true,
		Title:       title,
		Description: out.Name + ": saldo " + out.Quantity.String() + " " + out.Unit,
		Data:        out,
	})
}

// Totals godoc
// @Summary      Totales normalizados del inventario
// @Description  Peso (KG), volumen (L) y unidades sin ancla, nunca mezclados.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_type  query  string  false  "DONATED | PURCHASED"
// @Param        search        query  string  false  "Filtro por nombre"
// @Success      200  {object}  dto.TotalsResponse
// @Router       /api/inventory/totals [get]
func (h *InventoryHandler) Totals(c *fiber.Ctx) error {
	out, err := h.totals.Summarize(c.UserContext(), c.Query("product_type"), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
