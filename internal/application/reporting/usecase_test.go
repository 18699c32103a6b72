package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/application/inventory"
	"github.com/jhoicas/Veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/memory"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

type fixture struct {
	products *usecase.ProductUseCase
	sales    *inventory.SalesUseCase
	reports  *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	products := usecase.NewProductUseCase(store, store.Products(), store.Archive(), 5)
	sales := inventory.NewSalesUseCase(store, store.Sales(), nil)
	return &fixture{
		products: products,
		sales:    sales,
		reports:  NewUseCase(store.Reports(), products, sales),
	}
}

func (f *fixture) product(t *testing.T, name string, price int64, stock int) string {
	t.Helper()
	p, err := f.products.Create(context.Background(), dto.CreateProductRequest{
		Name: name, Price: decimal.NewFromInt(price), Stock: stock,
	})
	require.NoError(t, err)
	return p.ID
}

func (f *fixture) sell(t *testing.T, id string, q int) *dto.SaleResponse {
	t.Helper()
	s, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{ProductID: id, Quantity: q})
	require.NoError(t, err)
	return s
}

// ─── SalesByProduct ───────────────────────────────────────────────────────────

func TestSalesByProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	perros := f.product(t, "Alimento para perros", 50, 20)
	collar := f.product(t, "Collar antipulgas", 35, 8)
	f.product(t, "Sin ventas", 10, 3)

	f.sell(t, perros, 2)
	f.sell(t, collar, 1)
	f.sell(t, perros, 3)

	// cambio de precio posterior: los ingresos no cambian
	price := decimal.NewFromInt(999)
	_, err := f.products.Update(ctx, perros, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	out, err := f.reports.SalesByProduct(ctx)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "Alimento para perros", out.Items[0].ProductName)
	assert.Equal(t, 5, out.Items[0].UnitsSold)
	assert.Equal(t, 2, out.Items[0].SaleCount)
	assert.True(t, out.Items[0].Revenue.Equal(decimal.NewFromInt(250)))

	assert.Equal(t, 6, out.TotalUnits)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(285)))
}

// ─── Summary ──────────────────────────────────────────────────────────────────

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "A", 10, 10)
	f.product(t, "B", 5, 2)

	f.sell(t, a, 4)

	s, err := f.reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ProductCount)
	assert.Equal(t, 8, s.UnitsInStock)
	assert.True(t, s.StockValue.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 1, s.SaleCount)
	assert.Equal(t, 4, s.UnitsSold)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 1, s.LowStockCount)
	assert.Equal(t, 5, s.LowStockThreshold)
}

func TestListSales_Filtro(t *testing.T) {
	f := newFixture(t)
	a := f.product(t, "Juguete para perros", 25, 10)
	b := f.product(t, "Juguete para gatos", 20, 12)
	f.sell(t, a, 1)
	f.sell(t, b, 1)

	out, err := f.reports.ListSales(context.Background(), "gatos")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Juguete para gatos", out.Items[0].ProductName)
}

// ─── PDF ──────────────────────────────────────────────────────────────────────

type stubGenerator struct {
	receipt   dto.SaleResponse
	salesRows int
	lowStock  dto.LowStockResponse
	err       error
}

func (g *stubGenerator) SaleReceipt(_ context.Context, sale dto.SaleResponse) ([]byte, error) {
	g.receipt = sale
	return []byte("%PDF-recibo"), g.err
}

func (g *stubGenerator) SalesReport(_ context.Context, _ dto.SalesByProductResponse, sales []dto.SaleResponse, _ time.Time) ([]byte, error) {
	g.salesRows = len(sales)
	return []byte("%PDF-ventas"), g.err
}

func (g *stubGenerator) LowStockReport(_ context.Context, r dto.LowStockResponse, _ time.Time) ([]byte, error) {
	g.lowStock = r
	return []byte("%PDF-stock"), g.err
}

func TestSaleReceiptPDF(t *testing.T) {
	f := newFixture(t)
	gen := &stubGenerator{}
	uc := NewPDFUseCase(f.reports, f.sales, gen)
	sale := f.sell(t, f.product(t, "Cama para perros", 100, 5), 1)

	b, name, err := uc.SaleReceiptPDF(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-recibo", string(b))
	assert.Equal(t, "recibo_"+sale.ID[:8]+".pdf", name)
	assert.Equal(t, "Cama para perros", gen.receipt.ProductName)
}

func TestSaleReceiptPDF_NoExiste(t *testing.T) {
	f := newFixture(t)
	uc := NewPDFUseCase(f.reports, f.sales, &stubGenerator{})

	_, _, err := uc.SaleReceiptPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesReportPDF(t *testing.T) {
	f := newFixture(t)
	gen := &stubGenerator{}
	uc := NewPDFUseCase(f.reports, f.sales, gen)
	id := f.product(t, "A", 10, 10)
	f.sell(t, id, 1)
	f.sell(t, id, 2)

	_, name, err := uc.SalesReportPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "reporte_ventas_"))
	assert.Equal(t, 2, gen.salesRows)
}

func TestLowStockReportPDF(t *testing.T) {
	f := newFixture(t)
	gen := &stubGenerator{}
	uc := NewPDFUseCase(f.reports, f.sales, gen)
	f.product(t, "Poco", 10, 1)
	f.product(t, "Mucho", 10, 50)

	_, _, err := uc.LowStockReportPDF(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, gen.lowStock.Threshold)
	require.Len(t, gen.lowStock.Items, 1)
	assert.Equal(t, "Poco", gen.lowStock.Items[0].Name)
}

func TestPDF_ErrorDelGenerador(t *testing.T) {
	f := newFixture(t)
	uc := NewPDFUseCase(f.reports, f.sales, &stubGenerator{err: errors.New("fuente no encontrada")})

	_, _, err := uc.LowStockReportPDF(context.Background(), 5)
	assert.Error(t, err)
}
