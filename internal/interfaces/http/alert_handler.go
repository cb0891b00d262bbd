package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/donaciones-api/internal/application/alerts"
	"github.com/jhoicas/donaciones-api/internal/application/dto"
)

// AlertHandler alertas de vencimiento (protegido).
type AlertHandler struct {
	uc *alerts.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        only_unread  query  bool  false  "Solo no leídas"
// @Param        limit        query  int   false  "Límite"
// @Param        offset       query  int   false  "Desplazamiento"
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_PARAMS", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.UserContext(), c.QueryBool("only_unread"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UnreadCount godoc
// @Summary      Cantidad de alertas sin leer
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/alerts/unread-count [get]
func (h *AlertHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.uc.UnreadCount(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"unread": n})
}

// ToggleRead godoc
// @Summary      Alternar leída/no leída
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la alerta"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/read [patch]
func (h *AlertHandler) ToggleRead(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	n, err := h.uc.ToggleReadStatus(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"id": n.ID, "is_read": n.IsRead})
}

// MarkAllAsRead godoc
// @Summary      Marcar todas como leídas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/alerts/read-all [post]
func (h *AlertHandler) MarkAllAsRead(c *fiber.Ctx) error {
	n, err := h.uc.MarkAllAsRead(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}

// DeleteAll godoc
// @Summary      Eliminar todas las alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/alerts [delete]
func (h *AlertHandler) DeleteAll(c *fiber.Ctx) error {
	n, err := h.uc.DeleteAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// Delete godoc
// @Summary      Eliminar una alerta
// @Tags         alerts
// @Security     Bearer
// @Param        id   path  int  true  "ID de la alerta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [delete]
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Check godoc
// @Summary      Revisar vencimientos ahora
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanResponse
// @Router       /api/alerts/check [post]
func (h *AlertHandler) Check(c *fiber.Ctx) error {
	out, err := h.uc.CheckProductAlerts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
