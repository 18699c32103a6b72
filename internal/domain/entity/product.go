package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la veterinaria.
// Stock solo cambia a través del libro de stock (ajustes y ventas).
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta vigente
	Stock      int
	CategoryID string // vacío si no tiene categoría
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasCategory indica si el producto referencia una categoría.
func (p *Product) HasCategory() bool { return p.CategoryID != "" }
