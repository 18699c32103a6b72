package entity

import "time"

// Motivos predefinidos del libro de stock.
const (
	StockReasonSale    = "sale"
	StockReasonInitial = "initial stock"
)

// StockMovement es una entrada del libro de stock (append-only).
// Delta positivo = entrada, negativo = salida; nunca cero.
type StockMovement struct {
	ID          string
	ProductID   string
	Delta       int
	Reason      string
	StockBefore int
	StockAfter  int
	SaleID      string // vacío salvo que el movimiento provenga de una venta
	CreatedAt   time.Time
}
