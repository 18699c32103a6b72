package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/jhoicas/Veterinaria-api/internal/application/auth"
	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/application/importer"
	"github.com/jhoicas/Veterinaria-api/internal/application/inventory"
	"github.com/jhoicas/Veterinaria-api/internal/application/reporting"
	"github.com/jhoicas/Veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/excel"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Veterinaria-api/internal/interfaces/http"
	"github.com/jhoicas/Veterinaria-api/pkg/validator"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno: API completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

const testAdminPassword = "admin123"

type apiEnv struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	store := memory.NewStore()

	products := usecase.NewProductUseCase(store, store.Products(), store.Archive(), 5)
	categories := usecase.NewCategoryUseCase(store.Categories())
	ledger := inventory.NewStockLedgerUseCase(store, store.Products(), store.Movements(), nil)
	sales := inventory.NewSalesUseCase(store, store.Sales(), nil)
	codec := excel.NewCodec()
	imports := importer.NewUseCase(products, categories, store.Products(), store.Categories(), codec, codec, nil)
	reports := reporting.NewUseCase(store.Reports(), products, sales)
	documents := reporting.NewPDFUseCase(reports, sales, pdf.NewMarotoPDFGenerator("Veterinaria de prueba"))
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	_, err := authUC.EnsureAdmin(context.Background(), testUsername, testAdminPassword)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  products,
		CategoryUC: categories,
		LedgerUC:   ledger,
		SalesUC:    sales,
		ImportUC:   imports,
		ReportUC:   reports,
		PDFUC:      documents,
		AuthUC:     authUC,
		Validator:  validator.MustNew(),
		JWTSecret:  testJWTSecret,
	})

	env := &apiEnv{t: t, app: app}
	resp := env.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: testUsername, Password: testAdminPassword}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.token = decode[dto.LoginResponse](t, resp).Token
	require.NotEmpty(t, env.token)
	return env
}

func (e *apiEnv) do(method, path string, body any, withAuth bool) *http.Response {
	e.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(req, withAuth)
}

func (e *apiEnv) send(req *http.Request, withAuth bool) *http.Response {
	e.t.Helper()
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *apiEnv) createProduct(name string, price int64, stock int) dto.ProductResponse {
	e.t.Helper()
	resp := e.do(http.MethodPost, "/api/products", map[string]any{"name": name, "price": price, "stock": stock}, true)
	require.Equal(e.t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](e.t, resp)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y rutas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: testUsername, Password: "otra"}, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_BodyIncompleto_Retorna400(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "password")
}

func TestAuthMe(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodGet, "/api/auth/me", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", decode[dto.UserResponse](t, resp).Role)
}

func TestCatalogoPublico_SinToken(t *testing.T) {
	env := newAPI(t)
	env.createProduct("Alimento para perros", 50, 20)
	env.createProduct("Arena para gatos", 30, 0)

	resp := env.do(http.MethodGet, "/api/products?in_stock=true", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Alimento para perros", list.Items[0].Name)

	resp = env.do(http.MethodGet, "/api/products?q=GATO", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ProductListResponse](t, resp).Total)
}

func TestEscrituraSinToken_Retorna401(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/products", map[string]any{"name": "X", "price": 1, "stock": 1}, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(http.MethodGet, "/api/reports/summary", nil, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutaInexistente_Retorna404(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodGet, "/no-existe", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_PrecioNegativo_Retorna400(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/products", map[string]any{"name": "Correa", "price": -1, "stock": 3}, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "price")
}

func TestCrearProducto_FueraDeRango_Retorna400(t *testing.T) {
	env := newAPI(t)
	cases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"stock supera INTEGER", map[string]any{"name": "Correa", "price": 10, "stock": 3000000000}, "stock"},
		{"precio desborda NUMERIC", map[string]any{"name": "Correa", "price": "100000000000000000000", "stock": 1}, "price"},
		{"precio con tres decimales", map[string]any{"name": "Correa", "price": "10.999", "stock": 1}, "price"},
	}
	for _, c := range cases {
		resp := env.do(http.MethodPost, "/api/products", c.body, true)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, c.name)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION", body.Code, c.name)
		assert.Contains(t, body.Fields, c.field, c.name)
	}
}

func TestCrearProducto_CategoriaInexistente_Retorna404(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/products", map[string]any{
		"name": "Correa", "price": 10, "stock": 3, "category_id": "6f1c1a52-0000-4000-8000-000000000000",
	}, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducto_ObtenerActualizarEliminar(t *testing.T) {
	env := newAPI(t)
	p := env.createProduct("Juguete mordedor", 15, 4)

	resp := env.do(http.MethodPut, "/api/products/"+p.ID, map[string]any{"price": "18.50"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("18.50")))
	assert.Equal(t, 4, updated.Stock, "actualizar no toca el stock")

	resp = env.do(http.MethodDelete, "/api/products/"+p.ID, nil, true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(http.MethodGet, "/api/products/"+p.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(http.MethodDelete, "/api/products/"+p.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "eliminar dos veces da 404")

	resp = env.do(http.MethodGet, "/api/products/deleted", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	archived := decode[[]dto.DeletedProductResponse](t, resp)
	require.Len(t, archived, 1)
	assert.Equal(t, "Juguete mordedor", archived[0].Name)
	assert.Equal(t, 4, archived[0].Stock)
}

func TestStockBajo(t *testing.T) {
	env := newAPI(t)
	env.createProduct("Shampoo", 25, 2)
	env.createProduct("Cama", 120, 10)

	resp := env.do(http.MethodGet, "/api/products/low-stock", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low := decode[dto.LowStockResponse](t, resp)
	assert.Equal(t, 5, low.Threshold)
	require.Len(t, low.Items, 1)
	assert.Equal(t, "Shampoo", low.Items[0].Name)

	resp = env.do(http.MethodGet, "/api/products/low-stock?threshold=11", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.LowStockResponse](t, resp).Items, 2)
}

func TestCategorias_Duplicada_Retorna409(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/categories", dto.CreateCategoryRequest{Name: "Higiene"}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(http.MethodPost, "/api/categories", dto.CreateCategoryRequest{Name: "HIGIENE"}, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(http.MethodGet, "/api/categories", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.CategoryResponse](t, resp), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de stock y ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoVentaYAjustes(t *testing.T) {
	env := newAPI(t)
	p := env.createProduct("Dog Food", 20, 50)

	resp := env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: p.ID, Quantity: 5}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, "Dog Food", sale.ProductName)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(100)))

	resp = env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", dto.AdjustStockRequest{Delta: -3, Reason: "vencido"}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	adj := decode[dto.AdjustStockResponse](t, resp)
	assert.Equal(t, 42, adj.Product.Stock)
	assert.Equal(t, 45, adj.Movement.StockBefore)

	resp = env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", dto.AdjustStockRequest{Delta: -50, Reason: "merma"}, true)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: p.ID, Quantity: 43}, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(http.MethodGet, "/api/products/"+p.ID+"/history", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.StockHistoryResponse](t, resp)
	require.Len(t, history.Items, 3)
	sum := 0
	for _, m := range history.Items {
		sum += m.Delta
	}
	assert.Equal(t, 42, sum, "la suma del historial coincide con el stock")
	assert.Equal(t, sale.ID, history.Items[1].SaleID)

	resp = env.do(http.MethodGet, "/api/sales/"+sale.ID, nil, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(http.MethodGet, "/api/sales?product=dog", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.SaleListResponse](t, resp).Total)
}

func TestAjuste_DeltaCero_Retorna400(t *testing.T) {
	env := newAPI(t)
	p := env.createProduct("Collar", 12, 5)

	resp := env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", dto.AdjustStockRequest{Delta: 0, Reason: "x"}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", dto.AdjustStockRequest{Delta: 2, Reason: "   "}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAjuste_FueraDeRango_Retorna400(t *testing.T) {
	env := newAPI(t)
	p := env.createProduct("Collar", 12, 5)

	resp := env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", map[string]any{"delta": 3000000000, "reason": "x"}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// delta válido, pero el stock resultante superaría el máximo
	resp = env.do(http.MethodPost, "/api/products/"+p.ID+"/adjustments", dto.AdjustStockRequest{Delta: 2147483647, Reason: "x"}, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Fields, "delta")

	resp = env.do(http.MethodGet, "/api/products/"+p.ID, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, decode[dto.ProductResponse](t, resp).Stock)
}

func TestHistorial_ProductoInexistente_Retorna404(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodGet, "/api/products/6f1c1a52-0000-4000-8000-000000000000/history", nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVenta_ProductoInexistente_Retorna404(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: "6f1c1a52-0000-4000-8000-000000000000", Quantity: 1}, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes(t *testing.T) {
	env := newAPI(t)
	a := env.createProduct("Alimento", 10, 30)
	b := env.createProduct("Juguete", 5, 10)
	env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: a.ID, Quantity: 2}, true)
	env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: b.ID, Quantity: 6}, true)

	resp := env.do(http.MethodGet, "/api/reports/sales-by-product", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	byProduct := decode[dto.SalesByProductResponse](t, resp)
	require.Len(t, byProduct.Items, 2)
	assert.Equal(t, "Juguete", byProduct.Items[0].ProductName, "ordenado por unidades vendidas")
	assert.True(t, byProduct.TotalRevenue.Equal(decimal.NewFromInt(50)))

	resp = env.do(http.MethodGet, "/api/reports/summary", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.SummaryResponse](t, resp)
	assert.Equal(t, 2, summary.ProductCount)
	assert.Equal(t, 32, summary.UnitsInStock)
	assert.Equal(t, 1, summary.LowStockCount)
}

func TestDocumentosPDF(t *testing.T) {
	env := newAPI(t)
	p := env.createProduct("Alimento", 10, 30)
	resp := env.do(http.MethodPost, "/api/sales", dto.RecordSaleRequest{ProductID: p.ID, Quantity: 2}, true)
	sale := decode[dto.SaleResponse](t, resp)

	for _, path := range []string{
		"/api/sales/" + sale.ID + "/receipt",
		"/api/reports/sales.pdf",
		"/api/reports/low-stock.pdf?threshold=50",
	} {
		resp := env.do(http.MethodGet, path, nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"), path)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf", path)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), path)
	}

	resp = env.do(http.MethodGet, "/api/sales/6f1c1a52-0000-4000-8000-000000000000/receipt", nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestImportarFilas(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/products/import/rows", dto.ImportRowsRequest{Rows: []map[string]string{
		{"nombre": "Arena", "precio": "30", "cantidad": "10", "categoria": "Higiene"},
		{"nombre": "Correa", "precio": "-5", "cantidad": "2", "categoria": ""},
	}}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[dto.ImportResult](t, resp)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
}

func TestImportarFilas_FaltaColumna_Retorna422(t *testing.T) {
	env := newAPI(t)
	resp := env.do(http.MethodPost, "/api/products/import/rows", dto.ImportRowsRequest{Rows: []map[string]string{
		{"name": "Arena", "price": "30"},
	}}, true)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_FORMAT", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(http.MethodPost, "/api/products/import/rows", dto.ImportRowsRequest{}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "sin filas")

	resp = env.do(http.MethodGet, "/api/products", nil, false)
	assert.Equal(t, 0, decode[dto.ProductListResponse](t, resp).Total, "no se insertó nada")
}

func TestImportarExcel(t *testing.T) {
	env := newAPI(t)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Hoja1")
	require.NoError(t, err)
	for _, r := range [][]string{
		{"Nombre", "Precio", "Existencias", "Categoría"},
		{"Alimento para gatos", "45.90", "12", "Alimentos"},
		{"Pelota", "8", "30", "Juguetes"},
	} {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	var xlsxBuf bytes.Buffer
	require.NoError(t, file.Write(&xlsxBuf))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "productos.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsxBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := env.send(req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[dto.ImportResult](t, resp)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Rejected)

	resp = env.do(http.MethodGet, "/api/products/export", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	exported, err := xlsx.OpenBinary(raw)
	require.NoError(t, err)
	require.NotEmpty(t, exported.Sheets)
	assert.Len(t, exported.Sheets[0].Rows, 3, "cabecera + 2 productos")
}

func TestImportarExcel_SinArchivo_Retorna400(t *testing.T) {
	env := newAPI(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("otro", "valor"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := env.send(req, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_FILE", decode[dto.ErrorResponse](t, resp).Code)
}
