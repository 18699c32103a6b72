package repository

import (
	"context"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
)

// StockMovementRepository es el libro de stock: solo se agregan entradas,
// nunca se modifican. Las entradas se eliminan únicamente junto a su producto.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devuelve las entradas de la más antigua a la más reciente.
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
