package dto

import "github.com/shopspring/decimal"

// ProductSalesDTO unidades e ingresos por producto.
type ProductSalesDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SaleCount   int             `json:"sale_count"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesByProductResponse respuesta de GET /api/reports/sales-by-product.
type SalesByProductResponse struct {
	Items        []ProductSalesDTO `json:"items"`
	TotalUnits   int               `json:"total_units"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
}

// SummaryResponse respuesta de GET /api/reports/summary.
type SummaryResponse struct {
	ProductCount      int             `json:"product_count"`
	UnitsInStock      int             `json:"units_in_stock"`
	StockValue        decimal.Decimal `json:"stock_value"`
	SaleCount         int             `json:"sale_count"`
	UnitsSold         int             `json:"units_sold"`
	Revenue           decimal.Decimal `json:"revenue"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}
