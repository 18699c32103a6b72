package dto

import "time"

// AdjustStockRequest body para POST /api/products/:id/adjustments.
// Delta con signo: positivo entrada, negativo salida (merma, vencimiento...).
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required,gte=-2147483647,lte=2147483647"`
	Reason string `json:"reason" validate:"notblank,max=255"`
}

// StockMovementResponse entrada del libro de stock.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Delta       int       `json:"delta"`
	Reason      string    `json:"reason"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	SaleID      string    `json:"sale_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdjustStockResponse resultado de un ajuste: producto actualizado y movimiento creado.
type AdjustStockResponse struct {
	Product  ProductResponse       `json:"product"`
	Movement StockMovementResponse `json:"movement"`
}

// StockHistoryResponse historial de un producto, del más antiguo al más reciente.
type StockHistoryResponse struct {
	ProductID string                  `json:"product_id"`
	Items     []StockMovementResponse `json:"items"`
}
