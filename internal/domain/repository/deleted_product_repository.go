package repository

import (
	"context"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
)

// DeletedProductRepository archivo de productos eliminados (solo inserción y lectura).
type DeletedProductRepository interface {
	Create(ctx context.Context, snapshot *entity.DeletedProduct) error
	// List devuelve del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.DeletedProduct, error)
}
