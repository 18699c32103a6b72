package repository

import (
	"context"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get devuelven (nil, nil) si no hay coincidencia.
type CategoryRepository interface {
	// Create devuelve ErrDuplicate si ya existe una categoría con ese nombre.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetByName busca sin distinguir mayúsculas.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
