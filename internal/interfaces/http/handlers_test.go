package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/application/sales"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/copyshop-ledger/internal/interfaces/http"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un SQLite en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	store := sqlite.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	log := logger.Nop()
	locks := inventory.NewKeyedLock()
	adjust := inventory.NewAdjustStockUseCase(store, locks, time.UTC, log)
	expenses := usecase.NewExpenseUseCase(store, time.UTC, log)
	saleUC := sales.NewSaleUseCase(store, adjust, expenses, locks, time.UTC, log)

	app := apphttp.NewApp("copyshop-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(store, adjust, locks, log),
		AdjustUC:   adjust,
		SaleUC:     saleUC,
		ReportUC:   sales.NewReportUseCase(saleUC, pdf.NewMarotoReportGenerator(), "Toko Test", "IDR"),
		PurchaseUC: usecase.NewPurchaseUseCase(store, time.UTC),
		ExpenseUC:  expenses,
	})
	return app
}

// doJSON lanza la petición y devuelve la respuesta; body se serializa como JSON si no es nil.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createProduct(t *testing.T, app *fiber.App, in dto.CreateProductRequest) dto.CreateProductResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products", in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.CreateProductResponse](t, resp)
}

func today() string { return date.Today(time.UTC).String() }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestFlujoCaja_AltaVentaResumenBorrado(t *testing.T) {
	app := buildTestApp(t)

	p := createProduct(t, app, dto.CreateProductRequest{
		Name: "Pulpen Biru", Category: entity.CategoryStationery,
		Cost: decimal.NewFromInt(2000), Price: decimal.NewFromInt(3000), Stock: 10,
	})
	assert.Equal(t, "ATK-001", p.Code)

	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", dto.Cart{
		PaymentMethod: entity.PaymentCash,
		Received:      decimal.NewFromInt(10000),
		Stationery:    []dto.CartProductLine{{ProductID: p.ID, Quantity: 3}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[dto.CheckoutResponse](t, resp)
	require.Len(t, out.Sales, 1)
	assert.True(t, out.Change.Equal(decimal.NewFromInt(1000)))

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+p.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, decode[dto.ProductResponse](t, resp).Stock)

	summaryURL := "/api/sales/summary?category=stationery&date_from=" + today() + "&date_to=" + today()
	resp = doJSON(t, app, http.MethodGet, summaryURL, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sum := decode[dto.SummaryResponse](t, resp)
	assert.True(t, sum.Revenue.Equal(decimal.NewFromInt(9000)))
	assert.True(t, sum.Cost.Equal(decimal.NewFromInt(6000)))
	assert.True(t, sum.Profit.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 1, sum.Transactions)

	resp = doJSON(t, app, http.MethodDelete, "/api/sales/"+out.Sales[0].ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ChangedResponse](t, resp).Changed)

	resp = doJSON(t, app, http.MethodGet, summaryURL, nil)
	sum = decode[dto.SummaryResponse](t, resp)
	assert.True(t, sum.Revenue.IsZero())
	assert.Zero(t, sum.Transactions)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/"+out.Sales[0].ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCheckout_Errores(t *testing.T) {
	app := buildTestApp(t)
	p := createProduct(t, app, dto.CreateProductRequest{
		Name: "Kertas A4", Category: entity.CategoryStationery,
		Cost: decimal.NewFromInt(45000), Price: decimal.NewFromInt(55000), Stock: 1,
	})

	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", dto.Cart{
		PaymentMethod: entity.PaymentElectronic,
		Stationery:    []dto.CartProductLine{{ProductID: p.ID, Quantity: 2}},
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/sales/checkout", dto.Cart{
		PaymentMethod: entity.PaymentCash,
		Received:      decimal.NewFromInt(1000),
		Stationery:    []dto.CartProductLine{{ProductID: p.ID, Quantity: 1}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/sales/checkout", dto.Cart{
		PaymentMethod: entity.PaymentCash,
		Stationery:    []dto.CartProductLine{{ProductID: "no-existe", Quantity: 1}},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/sales/checkout", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, raw.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, raw).Code)
}

func TestProductos_ValidacionYCambios(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Sin precio", Category: entity.CategoryStationery, Cost: decimal.NewFromInt(1000),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "price", e.Field)

	p := createProduct(t, app, dto.CreateProductRequest{
		Name: "Teh Botol", Category: entity.CategoryConsumable,
		Cost: decimal.NewFromInt(4000), Price: decimal.NewFromInt(6000),
	})
	assert.Equal(t, "MM-001", p.Code)

	name := "Teh Botol Sosro"
	resp = doJSON(t, app, http.MethodPut, "/api/products/"+p.ID, dto.UpdateProductRequest{Name: &name})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ChangedResponse](t, resp).Changed)

	resp = doJSON(t, app, http.MethodGet, "/api/products?category=consumable&search=sosro", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, name, list[0].Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+p.ID, nil)
	assert.True(t, decode[dto.ChangedResponse](t, resp).Changed)
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+p.ID, nil)
	assert.False(t, decode[dto.ChangedResponse](t, resp).Changed)

	resp = doJSON(t, app, http.MethodPut, "/api/products/"+p.ID, dto.UpdateProductRequest{Name: &name})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStock_AjusteYKardex(t *testing.T) {
	app := buildTestApp(t)
	p := createProduct(t, app, dto.CreateProductRequest{
		Name: "Spidol", Category: entity.CategoryStationery,
		Cost: decimal.NewFromInt(8000), Price: decimal.NewFromInt(12000), Stock: 2,
	})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/adjust", dto.AdjustStockRequest{ProductID: p.ID, Delta: 5})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	adj := decode[dto.AdjustStockResponse](t, resp)
	assert.True(t, adj.Changed)
	assert.Equal(t, 7, adj.Stock)

	resp = doJSON(t, app, http.MethodPost, "/api/stock/adjust", dto.AdjustStockRequest{ProductID: p.ID, Delta: -10})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, -3, decode[dto.AdjustStockResponse](t, resp).Stock, "las correcciones pueden dejar stock negativo")

	resp = doJSON(t, app, http.MethodPost, "/api/stock/adjust", dto.AdjustStockRequest{ProductID: "no-existe", Delta: 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/movements?product_id="+p.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	movs := decode[[]dto.StockMovementResponse](t, resp)
	require.Len(t, movs, 3)
	assert.Equal(t, []int{2, 5, -10}, []int{movs[0].Delta, movs[1].Delta, movs[2].Delta})

	resp = doJSON(t, app, http.MethodGet, "/api/purchases/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ps := decode[dto.PurchaseSummaryResponse](t, resp)
	assert.Equal(t, 2, ps.Count)
	assert.Equal(t, 7, ps.TotalQuantity)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/movements?date_from=2024-13-01", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGastos_CRUD(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/expenses", map[string]any{
		"description": "Tinta printer", "amount": "75000", "date": "2024-05-01",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.ExpenseResponse](t, resp)
	assert.Equal(t, "2024-05-01", created.Date.String())

	resp = doJSON(t, app, http.MethodPut, "/api/expenses/"+created.ID, map[string]any{
		"description": "Tinta printer", "amount": "80000", "date": "2024-05-01",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ChangedResponse](t, resp).Changed)

	resp = doJSON(t, app, http.MethodGet, "/api/expenses/summary?date_from=2024-05-01&date_to=2024-05-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sum := decode[dto.ExpenseSummaryResponse](t, resp)
	assert.Equal(t, 1, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(80000)))

	resp = doJSON(t, app, http.MethodPost, "/api/expenses", map[string]any{"description": "", "amount": "1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/expenses/"+created.ID, nil)
	assert.True(t, decode[dto.ChangedResponse](t, resp).Changed)
	resp = doJSON(t, app, http.MethodGet, "/api/expenses/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReporteVentasPDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.CreateSaleRequest{
		Category: entity.CategoryService, PaymentMethod: entity.PaymentElectronic, TotalAmount: decimal.NewFromInt(10000),
		Items: []dto.SaleItemRequest{{ServiceType: entity.ServicePhotocopy, Price: decimal.NewFromInt(250), Quantity: 40}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/sales.pdf?date_from="+today(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = doJSON(t, app, http.MethodGet, "/api/reports/sales.pdf?category=food", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}
