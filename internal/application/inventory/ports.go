package inventory

// Metrics recibe los eventos del libro de stock. La implementación Prometheus vive en
// infrastructure/metrics; NopMetrics se usa cuando no hay registro.
type Metrics interface {
	StockAdjusted(delta int)
	SaleRecorded(quantity int)
}

// NopMetrics descarta los eventos.
type NopMetrics struct{}

func (NopMetrics) StockAdjusted(int) {}
func (NopMetrics) SaleRecorded(int)  {}
