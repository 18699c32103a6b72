package repository

import (
	"context"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
)

// SaleFilter filtros para el listado de ventas.
type SaleFilter struct {
	ProductName string // subcadena, sin distinguir mayúsculas
	Limit       int    // 0 = sin límite
}

// SaleRecord es una venta junto al nombre del producto vendido.
type SaleRecord struct {
	entity.Sale
	ProductName string
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*SaleRecord, error)
	// List devuelve ventas de la más reciente a la más antigua.
	List(ctx context.Context, filter SaleFilter) ([]*SaleRecord, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
