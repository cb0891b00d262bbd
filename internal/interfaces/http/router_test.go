package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/application/alerts"
	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/application/inventory"
	"github.com/jhoicas/donaciones-api/internal/application/usecase"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
	"github.com/jhoicas/donaciones-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/donaciones-api/internal/interfaces/http"
)

func buildApp(store *memory.Store) *fiber.App {
	tx := memory.NewTxRunner(store)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(tx, store.Products(), store.Movements()),
		RegisterMovement: inventory.NewRegisterMovementUseCase(tx, zerolog.Nop()),
		Totals:           inventory.NewTotalsUseCase(store.Products(), quantity.NewFormatter("es")),
		AlertUC:          alerts.NewAlertUseCase(store.Notifications(), store.Products(), zerolog.Nop(), 30),
		Auth:             apphttp.AuthConfig{Secret: testJWTSecret, Issuer: testIssuer},
	})
	return app
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createProduct(t *testing.T, app *fiber.App, req dto.CreateProductRequest) dto.ProductResponse {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/products", bearer(t), req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func TestRouter_RequiereToken(t *testing.T) {
	app := buildApp(memory.NewStore())
	resp := do(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_SalidaExitosa(t *testing.T) {
	app := buildApp(memory.NewStore())
	p := createProduct(t, app, dto.CreateProductRequest{Name: "Arroz", Quantity: "100", Unit: "KG", ProductType: entity.ProductTypeDonated})

	resp := do(t, app, http.MethodPost, "/api/inventory/outputs", bearer(t), dto.RegisterMovementRequest{
		ProductID: p.ID, Quantity: "30", Unit: "KG", Category: entity.CategoryConsumption,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	res := decode[dto.ActionResult](t, resp)
	assert.True(t, res.Success)
	assert.Equal(t, "Salida registrada", res.Title)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), bearer(t), nil)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "70", got.Quantity.String())

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d/movements", p.ID), bearer(t), nil)
	movs := decode[[]dto.MovementResponse](t, resp)
	require.Len(t, movs, 1)
	assert.Equal(t, testUserID, movs[0].CreatedBy)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d/ledger", p.ID), bearer(t), nil)
	check := decode[dto.LedgerCheckResponse](t, resp)
	assert.True(t, check.Consistent)
}

func TestRouter_ErroresComoActionResult(t *testing.T) {
	app := buildApp(memory.NewStore())
	p := createProduct(t, app, dto.CreateProductRequest{Name: "Arroz", Quantity: "100", Unit: "KG", ProductType: entity.ProductTypeDonated})

	cases := []struct {
		name   string
		path   string
		in     dto.RegisterMovementRequest
		status int
		code   string
	}{
		{"unidad incompatible", "/api/inventory/outputs", dto.RegisterMovementRequest{ProductID: p.ID, Quantity: "30", Unit: "L", Category: entity.CategorySale}, http.StatusUnprocessableEntity, "INCOMPATIBLE_UNIT"},
		{"stock insuficiente", "/api/inventory/outputs", dto.RegisterMovementRequest{ProductID: p.ID, Quantity: "101", Unit: "KG", Category: entity.CategorySale}, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"cantidad inválida", "/api/inventory/inputs", dto.RegisterMovementRequest{ProductID: p.ID, Quantity: "dos", Unit: "KG", Category: entity.CategoryDonation}, http.StatusBadRequest, "VALIDATION"},
		{"unidad desconocida", "/api/inventory/inputs", dto.RegisterMovementRequest{ProductID: p.ID, Quantity: "2", Unit: "OZ", Category: entity.CategoryDonation}, http.StatusBadRequest, "UNKNOWN_UNIT"},
		{"producto inexistente", "/api/inventory/inputs", dto.RegisterMovementRequest{ProductID: 404, Quantity: "2", Unit: "KG", Category: entity.CategoryDonation}, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"ajuste sin signo", "/api/inventory/adjustments", dto.RegisterMovementRequest{ProductID: p.ID, Quantity: "2", Unit: "KG", Category: entity.CategoryGeneral}, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, tc.path, bearer(t), tc.in)
			assert.Equal(t, tc.status, resp.StatusCode)
			res := decode[dto.ActionResult](t, resp)
			assert.False(t, res.Success)
			assert.Equal(t, tc.code, res.Code)
			assert.NotEmpty(t, res.Title)
		})
	}

	resp := do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), bearer(t), nil)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "100", got.Quantity.String())
}

func TestRouter_Totales(t *testing.T) {
	app := buildApp(memory.NewStore())
	w := decimal.NewFromInt(250)
	createProduct(t, app, dto.CreateProductRequest{Name: "Arroz", Quantity: "10", Unit: "KG", ProductType: entity.ProductTypeDonated})
	createProduct(t, app, dto.CreateProductRequest{Name: "Galletas", Quantity: "10", Unit: "UN", UnitWeight: &w, UnitOfUnitWeight: "G", ProductType: entity.ProductTypeDonated})
	createProduct(t, app, dto.CreateProductRequest{Name: "Aceite", Quantity: "3,5", Unit: "L", ProductType: entity.ProductTypePurchased})

	resp := do(t, app, http.MethodGet, "/api/inventory/totals", bearer(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	totals := decode[dto.TotalsResponse](t, resp)
	assert.Equal(t, "12.5", totals.Weight)
	assert.Equal(t, "3.5", totals.Volume)
	assert.Equal(t, "12,50 KG + 3,50 L", totals.Formatted)
	assert.Equal(t, 3, totals.Products)

	resp = do(t, app, http.MethodGet, "/api/inventory/totals?product_type=PURCHASED", bearer(t), nil)
	totals = decode[dto.TotalsResponse](t, resp)
	assert.Equal(t, "3,50 L", totals.Formatted)
}

func TestRouter_Alertas(t *testing.T) {
	store := memory.NewStore()
	app := buildApp(store)
	require.NoError(t, store.Products().Create(context.Background(), &entity.Product{
		Name: "Yogur", Quantity: decimal.NewFromInt(1), Unit: unit.KG,
		ValidityDate: time.Now().AddDate(0, 0, -1), ProductType: entity.ProductTypeDonated,
	}))

	resp := do(t, app, http.MethodPost, "/api/alerts/check", bearer(t), nil)
	scan := decode[dto.ScanResponse](t, resp)
	assert.Equal(t, 1, scan.Created)

	resp = do(t, app, http.MethodGet, "/api/alerts/unread-count", bearer(t), nil)
	count := decode[map[string]int64](t, resp)
	assert.EqualValues(t, 1, count["unread"])

	resp = do(t, app, http.MethodGet, "/api/alerts?only_unread=true", bearer(t), nil)
	list := decode[dto.AlertListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, entity.NotificationExpired, list.Items[0].Type)
	id := list.Items[0].ID

	resp = do(t, app, http.MethodPatch, fmt.Sprintf("/api/alerts/%d/read", id), bearer(t), nil)
	toggled := decode[map[string]any](t, resp)
	assert.Equal(t, true, toggled["is_read"])

	resp = do(t, app, http.MethodPost, "/api/alerts/read-all", bearer(t), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/alerts/%d", id), bearer(t), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/alerts/%d", id), bearer(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPatch, "/api/alerts/abc/read", bearer(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_CrearProductoConFechaDeFormulario(t *testing.T) {
	app := buildApp(memory.NewStore())

	resp := do(t, app, http.MethodPost, "/api/products", bearer(t), map[string]any{
		"name": "Leche", "quantity": "12", "unit": "KG", "product_type": entity.ProductTypeDonated,
		"validity_date": "2026-10-20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "2026-10-20", p.ValidityDate.Format(dto.DateLayout))

	resp = do(t, app, http.MethodPost, "/api/products", bearer(t), map[string]any{
		"name": "Leche", "quantity": "12", "unit": "KG", "product_type": entity.ProductTypeDonated,
		"validity_date": "20/10/2026",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", res.Code)
}

func TestRouter_ParametrosDeConsultaInvalidos(t *testing.T) {
	app := buildApp(memory.NewStore())

	for _, path := range []string{"/api/products?limit=abc", "/api/alerts?offset=x"} {
		t.Run(path, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, path, bearer(t), nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			res := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, "INVALID_PARAMS", res.Code)
		})
	}

	resp := do(t, app, http.MethodGet, "/api/products/0", bearer(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", res.Code)
}
