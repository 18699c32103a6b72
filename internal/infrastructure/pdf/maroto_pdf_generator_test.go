package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "0,00"},
		{decimal.NewFromInt(250), "250,00"},
		{decimal.NewFromInt(25000), "25.000,00"},
		{decimal.RequireFromString("1234567.5"), "1.234.567,50"},
		{decimal.NewFromInt(-1500), "-1.500,00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney(c.in), c.in.String())
	}
}

func isPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe empezar con la firma %PDF")
}

func TestSaleReceipt(t *testing.T) {
	g := NewMarotoPDFGenerator("Veterinaria Patitas")
	b, err := g.SaleReceipt(context.Background(), dto.SaleResponse{
		ID:          "3f1c2a9b-0000-0000-0000-000000000000",
		ProductName: "Alimento para perros",
		Quantity:    5,
		UnitPrice:   decimal.NewFromInt(50),
		Total:       decimal.NewFromInt(250),
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	isPDF(t, b)
}

func TestSalesReport(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	b, err := g.SalesReport(context.Background(), dto.SalesByProductResponse{
		Items: []dto.ProductSalesDTO{
			{ProductName: "Collar antipulgas", SaleCount: 2, UnitsSold: 3, Revenue: decimal.NewFromInt(105)},
		},
		TotalUnits:   3,
		TotalRevenue: decimal.NewFromInt(105),
	}, []dto.SaleResponse{
		{ProductName: "Collar antipulgas", Quantity: 2, Total: decimal.NewFromInt(70), CreatedAt: time.Now()},
	}, time.Now())
	require.NoError(t, err)
	isPDF(t, b)
}

func TestLowStockReport_SinProductos(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	b, err := g.LowStockReport(context.Background(), dto.LowStockResponse{Threshold: 5}, time.Now())
	require.NoError(t, err)
	isPDF(t, b)
}

func TestLowStockReport(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	b, err := g.LowStockReport(context.Background(), dto.LowStockResponse{
		Threshold: 5,
		Items: []dto.ProductResponse{
			{Name: "Transportadora para mascotas", Price: decimal.NewFromInt(120), Stock: 4},
			{Name: "Cama para gatos", Price: decimal.NewFromInt(90), Stock: 0},
		},
	}, time.Now())
	require.NoError(t, err)
	isPDF(t, b)
}
