package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada; inmutable una vez creada.
// UnitPrice guarda el precio del producto en el momento de la venta.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// Total devuelve Quantity × UnitPrice.
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
