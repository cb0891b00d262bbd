package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/donaciones-api/internal/application/alerts"
	"github.com/jhoicas/donaciones-api/internal/application/inventory"
	"github.com/jhoicas/donaciones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Totals           *inventory.TotalsUseCase
	AlertUC          *alerts.AlertUseCase
	Auth             AuthConfig
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	protected := app.Group("/api", AuthMiddleware(deps.Auth))

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Totals)
	invGroup.Post("/inputs", inventoryHandler.RegisterInput)
	invGroup.Post("/outputs", inventoryHandler.RegisterOutput)
	invGroup.Post("/adjustments", inventoryHandler.RegisterAdjustment)
	invGroup.Get("/totals", inventoryHandler.Totals)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", productHandler.ListMovements)
	products.Get("/:id/ledger", productHandler.VerifyLedger)

	alertGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertGroup.Get("/", alertHandler.List)
	alertGroup.Get("/unread-count", alertHandler.UnreadCount)
	alertGroup.Post("/read-all", alertHandler.MarkAllAsRead)
	alertGroup.Post("/check", alertHandler.Check)
	alertGroup.Delete("/", alertHandler.DeleteAll)
	alertGroup.Patch("/:id/read", alertHandler.ToggleRead)
	alertGroup.Delete("/:id", alertHandler.Delete)
}
