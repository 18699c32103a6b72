// Package reporting contiene las consultas de solo lectura sobre ventas y catálogo
// y la generación de documentos PDF a partir de ellas.
package reporting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// LowStockLister lista productos bajo el umbral de reposición.
type LowStockLister interface {
	LowStock(ctx context.Context, threshold int) (*dto.LowStockResponse, error)
	LowStockThreshold() int
}

// SalesLister lista ventas filtradas por nombre de producto.
type SalesLister interface {
	ListSales(ctx context.Context, productName string) (*dto.SaleListResponse, error)
}

// UseCase agregaciones de reportes. No modifica datos.
type UseCase struct {
	reports  repository.ReportRepository
	lowStock LowStockLister
	sales    SalesLister
}

// NewUseCase construye el caso de uso.
func NewUseCase(reports repository.ReportRepository, lowStock LowStockLister, sales SalesLister) *UseCase {
	return &UseCase{reports: reports, lowStock: lowStock, sales: sales}
}

// SalesByProduct unidades, número de ventas e ingresos por producto, ordenado por unidades.
// Los ingresos usan el precio guardado en cada venta.
func (uc *UseCase) SalesByProduct(ctx context.Context) (*dto.SalesByProductResponse, error) {
	rows, err := uc.reports.SalesByProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesByProductResponse{
		Items:        make([]dto.ProductSalesDTO, 0, len(rows)),
		TotalRevenue: decimal.Zero,
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.ProductSalesDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			SaleCount:   r.SaleCount,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
		})
		out.TotalUnits += r.UnitsSold
		out.TotalRevenue = out.TotalRevenue.Add(r.Revenue)
	}
	return out, nil
}

// Summary totales del inventario y de las ventas.
func (uc *UseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	threshold := uc.lowStock.LowStockThreshold()
	s, err := uc.reports.Summary(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		ProductCount:      s.ProductCount,
		UnitsInStock:      s.UnitsInStock,
		StockValue:        s.StockValue,
		SaleCount:         s.SaleCount,
		UnitsSold:         s.UnitsSold,
		Revenue:           s.Revenue,
		LowStockCount:     s.LowStockCount,
		LowStockThreshold: threshold,
	}, nil
}

// LowStock delega en el catálogo.
func (uc *UseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockResponse, error) {
	return uc.lowStock.LowStock(ctx, threshold)
}

// ListSales listado completo de ventas, opcionalmente filtrado por nombre de producto.
func (uc *UseCase) ListSales(ctx context.Context, productName string) (*dto.SaleListResponse, error) {
	return uc.sales.ListSales(ctx, productName)
}
