package repository

import (
	"context"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	Name       string // subcadena, sin distinguir mayúsculas
	InStock    bool   // solo productos con stock > 0
	CategoryID string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update modifica nombre, precio y categoría. Nunca toca el stock.
	Update(ctx context.Context, product *entity.Product) error
	// ApplyStockDelta suma delta al stock solo si el resultado queda entre 0 y catalog.MaxStock
	// (UPDATE ... WHERE stock + delta BETWEEN 0 AND max). Devuelve stock anterior y nuevo;
	// ErrNotFound si el producto no existe, ErrInsufficientStock si no alcanza y
	// un FieldError (ErrInvalidInput) si superaría el máximo.
	ApplyStockDelta(ctx context.Context, id string, delta int) (before, after int, err error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// ListBelowStock devuelve productos con stock estrictamente menor que threshold.
	ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// Delete elimina el producto; ErrNotFound si no existía.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
