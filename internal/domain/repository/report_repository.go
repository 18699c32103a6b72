package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSalesResult resultado crudo de ventas agrupadas por producto.
type ProductSalesResult struct {
	ProductID   string
	ProductName string
	SaleCount   int
	UnitsSold   int
	Revenue     decimal.Decimal // Σ quantity × unit_price (precio al momento de la venta)
}

// InventorySummary totales del catálogo y de las ventas.
type InventorySummary struct {
	ProductCount  int
	UnitsInStock  int
	StockValue    decimal.Decimal // Σ price × stock con el precio vigente
	SaleCount     int
	UnitsSold     int
	Revenue       decimal.Decimal
	LowStockCount int
}

// ReportRepository consultas de solo lectura para reportes. No modifica datos.
type ReportRepository interface {
	// SalesByProduct agrupa ventas por producto, ordenado por unidades vendidas descendente.
	SalesByProduct(ctx context.Context) ([]ProductSalesResult, error)
	// Summary calcula los totales; LowStockCount usa lowStockThreshold.
	Summary(ctx context.Context, lowStockThreshold int) (InventorySummary, error)
}
