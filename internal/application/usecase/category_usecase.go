package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; ErrDuplicate si el nombre ya existe (sin distinguir mayúsculas).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := catalog.ValidateCategoryName(in.Name); err != nil {
		return nil, err
	}
	name := catalog.NormalizeName(in.Name)
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cat := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(cat), nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
	}
	return items, nil
}

// EnsureCategory devuelve la categoría con ese nombre, creándola si no existe.
func (uc *CategoryUseCase) EnsureCategory(ctx context.Context, name string) (*dto.CategoryResponse, error) {
	if err := catalog.ValidateCategoryName(name); err != nil {
		return nil, err
	}
	name = catalog.NormalizeName(name)
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return dto.ToCategoryResponse(existing), nil
	}
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: name})
	if errors.Is(err, domain.ErrDuplicate) {
		// otra petición la creó entre la búsqueda y el insert
		existing, err = uc.repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrDuplicate
		}
		return dto.ToCategoryResponse(existing), nil
	}
	return created, err
}
