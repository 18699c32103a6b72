package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de solo lectura sobre el estado en memoria.
type ReportRepo struct{ h handle }

func (r *ReportRepo) SalesByProduct(_ context.Context) ([]repository.ProductSalesResult, error) {
	var out []repository.ProductSalesResult
	err := r.h.with("", func(d *data) error {
		idx := map[string]int{}
		for _, s := range d.sales {
			i, ok := idx[s.ProductID]
			if !ok {
				name := ""
				if p, found := d.products[s.ProductID]; found {
					name = p.Name
				}
				out = append(out, repository.ProductSalesResult{ProductID: s.ProductID, ProductName: name, Revenue: decimal.Zero})
				i = len(out) - 1
				idx[s.ProductID] = i
			}
			out[i].SaleCount++
			out[i].UnitsSold += s.Quantity
			out[i].Revenue = out[i].Revenue.Add(s.Total())
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UnitsSold != out[j].UnitsSold {
			return out[i].UnitsSold > out[j].UnitsSold
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out, err
}

func (r *ReportRepo) Summary(_ context.Context, lowStockThreshold int) (repository.InventorySummary, error) {
	sum := repository.InventorySummary{StockValue: decimal.Zero, Revenue: decimal.Zero}
	err := r.h.with("", func(d *data) error {
		for _, p := range d.products {
			sum.ProductCount++
			sum.UnitsInStock += p.Stock
			sum.StockValue = sum.StockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
			if p.Stock < lowStockThreshold {
				sum.LowStockCount++
			}
		}
		for _, s := range d.sales {
			sum.SaleCount++
			sum.UnitsSold += s.Quantity
			sum.Revenue = sum.Revenue.Add(s.Total())
		}
		return nil
	})
	return sum, err
}
