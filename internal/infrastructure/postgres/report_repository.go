package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByProduct ventas agrupadas por producto; el ingreso usa el precio guardado en cada venta.
func (r *ReportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT s.product_id, p.name, COUNT(*), COALESCE(SUM(s.quantity), 0),
		       COALESCE(SUM(s.quantity * s.unit_price), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY s.product_id, p.name
		ORDER BY SUM(s.quantity) DESC, p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSalesResult
	for rows.Next() {
		var res repository.ProductSalesResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.SaleCount, &res.UnitsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales by product: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Summary totales de catálogo y ventas.
func (r *ReportRepo) Summary(ctx context.Context, lowStockThreshold int) (repository.InventorySummary, error) {
	var sum repository.InventorySummary
	catalog := `
		SELECT COUNT(*), COALESCE(SUM(stock), 0), COALESCE(SUM(price * stock), 0),
		       COUNT(*) FILTER (WHERE stock < $1)
		FROM products`
	err := r.q.QueryRow(ctx, catalog, lowStockThreshold).Scan(
		&sum.ProductCount, &sum.UnitsInStock, &sum.StockValue, &sum.LowStockCount,
	)
	if err != nil {
		return sum, fmt.Errorf("catalog summary: %w", err)
	}
	sales := `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * unit_price), 0)
		FROM sales`
	if err := r.q.QueryRow(ctx, sales).Scan(&sum.SaleCount, &sum.UnitsSold, &sum.Revenue); err != nil {
		return sum, fmt.Errorf("sales summary: %w", err)
	}
	return sum, nil
}
