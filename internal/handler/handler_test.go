package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inventario/internal/listview"
	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/internal/service"
	"go-inventario/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Open(database.Options{Driver: database.DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	cRepo := repository.NewCategoryRepo(db)
	pRepo := repository.NewProductRepo(db)
	mRepo := repository.NewMovementRepo(db)
	iRepo := repository.NewInventoryRepo(db)
	inventory := service.NewInventoryService(iRepo, model.DefaultLowStockThreshold)

	h := Handlers{
		Category:  NewCategoryHandler(service.NewCategoryService(cRepo, nil), listview.DefaultPageSize),
		Product:   NewProductHandler(service.NewProductService(pRepo, cRepo, mRepo, nil), listview.DefaultPageSize),
		Movement:  NewMovementHandler(service.NewMovementService(mRepo, pRepo, nil), listview.DefaultPageSize),
		Inventory: NewInventoryHandler(inventory, listview.DefaultPageSize),
		Dashboard: NewDashboardHandler(service.NewDashboardService(iRepo, inventory)),
	}

	app := fiber.New()
	h.Register(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, url string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, url, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &e))
	return e.Error
}

func TestCategoryEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{"Analgesics", "Antibiotics", "Vitamins"} {
		status, _ := do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": name})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Analgesics"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "category 'Analgesics' already exists", errorOf(t, body))

	status, body = do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name cannot be empty", errorOf(t, body))

	status, body = do(t, app, "GET", "/api/v1/categories?q=ANTI", nil)
	require.Equal(t, http.StatusOK, status)
	var page listview.Page[model.Category]
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Antibiotics", page.Items[0].Name)

	id := page.Items[0].ID
	status, _ = do(t, app, "PUT", fmt.Sprintf("/api/v1/categories/%d", id), fiber.Map{"name": "Antivirals"})
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, "PUT", "/api/v1/categories/abc", fiber.Map{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, "DELETE", fmt.Sprintf("/api/v1/categories/%d", id), nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, "DELETE", fmt.Sprintf("/api/v1/categories/%d?confirm=true", id), nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, "DELETE", fmt.Sprintf("/api/v1/categories/%d?confirm=true", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInventoryFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Analgesics"})
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, app, "POST", "/api/v1/products", fiber.Map{
		"code": "P-001", "name": "Aspirin", "category": "Analgesics", "laboratory": "Bayer",
	})
	require.Equal(t, http.StatusCreated, status)
	var created struct {
		Data model.ProductDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	productID := created.Data.ID

	status, _ = do(t, app, "POST", "/api/v1/products", fiber.Map{"code": "P-001", "name": "Copy", "category": "Analgesics"})
	assert.Equal(t, http.StatusConflict, status)

	for _, m := range []struct {
		typ string
		qty int
	}{{"Compra", 100}, {"Venta", 30}, {"Venta", 20}} {
		status, body = do(t, app, "POST", "/api/v1/movements", fiber.Map{
			"product_id": productID, "date": "15/03/2024", "type": m.typ, "unit_price": 2.5, "quantity": m.qty,
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body = do(t, app, "GET", "/api/v1/movements?q=venta", nil)
	require.Equal(t, http.StatusOK, status)
	var ledger listview.Page[model.MovementRow]
	require.NoError(t, json.Unmarshal(body, &ledger))
	require.Len(t, ledger.Items, 2)
	assert.Equal(t, 20, ledger.Items[0].Quantity)
	assert.True(t, ledger.Items[0].Total.Equal(decimal.NewFromInt(50)), ledger.Items[0].Total.String())

	status, _ = do(t, app, "POST", "/api/v1/movements", `{"product":"Aspirin","date":"15/03/2024","type":"Compra","unit_price":"abc","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, "GET", "/api/v1/inventory", nil)
	require.Equal(t, http.StatusOK, status)
	var inv listview.Page[model.InventoryRow]
	require.NoError(t, json.Unmarshal(body, &inv))
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 50, inv.Items[0].Stock)
	assert.Equal(t, model.StockNormal, inv.Items[0].Status)

	status, body = do(t, app, "GET", "/api/v1/inventory?status=low_stock", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Empty(t, inv.Items)

	status, body = do(t, app, "GET", fmt.Sprintf("/api/v1/products/%d/movements", productID), nil)
	require.Equal(t, http.StatusOK, status)
	var history []model.Movement
	require.NoError(t, json.Unmarshal(body, &history))
	assert.Len(t, history, 3)

	status, body = do(t, app, "GET", "/api/v1/inventory/export", nil)
	require.Equal(t, http.StatusOK, status)
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	_ = f.Close()

	status, _ = do(t, app, "DELETE", fmt.Sprintf("/api/v1/products/%d?confirm=true", productID), nil)
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, app, "GET", fmt.Sprintf("/api/v1/products/%d/movements", productID), nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &history))
	assert.Empty(t, history)

	status, _ = do(t, app, "GET", fmt.Sprintf("/api/v1/products/%d", productID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductsPagination(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Generic"})
	require.Equal(t, http.StatusCreated, status)
	for i := 1; i <= 23; i++ {
		status, _ = do(t, app, "POST", "/api/v1/products", fiber.Map{
			"code": fmt.Sprintf("P-%03d", i), "name": fmt.Sprintf("Item %02d", i), "category": "Generic",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, app, "GET", "/api/v1/products?page=3", nil)
	require.Equal(t, http.StatusOK, status)
	var page listview.Page[model.ProductDetail]
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 21, page.FirstIndex)
	assert.False(t, page.HasNext)

	status, body = do(t, app, "GET", "/api/v1/products?page=99", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 3, page.Page)

	status, body = do(t, app, "GET", "/api/v1/products/options", nil)
	require.Equal(t, http.StatusOK, status)
	var options []model.ProductOption
	require.NoError(t, json.Unmarshal(body, &options))
	assert.Len(t, options, 23)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Vitamins"})
	require.Equal(t, http.StatusCreated, status)
	status, _ = do(t, app, "POST", "/api/v1/products", fiber.Map{"code": "V-1", "name": "Zinc", "category": "Vitamins"})
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, app, "GET", "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, status)
	var stats model.DashboardStats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.OutOfStockCount)
	assert.Equal(t, model.DefaultLowStockThreshold, stats.LowStockThreshold)
}
