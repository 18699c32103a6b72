package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de reposición cuando no se configura otro.
const DefaultLowStockThreshold = 5

// ProductUseCase casos de uso del catálogo. Stock solo cambia vía el libro de stock.
type ProductUseCase struct {
	tx                repository.TxRunner
	repo              repository.ProductRepository
	archive           repository.DeletedProductRepository
	lowStockThreshold int
}

// NewProductUseCase construye el caso de uso. threshold <= 0 usa DefaultLowStockThreshold.
func NewProductUseCase(
	tx repository.TxRunner,
	repo repository.ProductRepository,
	archive repository.DeletedProductRepository,
	threshold int,
) *ProductUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &ProductUseCase{tx: tx, repo: repo, archive: archive, lowStockThreshold: threshold}
}

// LowStockThreshold devuelve el umbral configurado.
func (uc *ProductUseCase) LowStockThreshold() int { return uc.lowStockThreshold }

// Create valida e inserta el producto. Si trae stock inicial registra además la
// entrada "initial stock" en el libro, en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := catalog.ValidateNewProduct(in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       catalog.NormalizeName(in.Name),
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: strings.TrimSpace(in.CategoryID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := checkCategory(ctx, repos.Categories, product.CategoryID); err != nil {
			return err
		}
		if err := repos.Products.Create(ctx, product); err != nil {
			return fmt.Errorf("crear producto: %w", err)
		}
		if product.Stock == 0 {
			return nil
		}
		return repos.Movements.Create(ctx, &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Delta:       product.Stock,
			Reason:      entity.StockReasonInitial,
			StockBefore: 0,
			StockAfter:  product.Stock,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// Update modifica nombre, precio y categoría. CategoryID vacío quita la categoría.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name != nil {
		if err := catalog.ValidateProductName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Price != nil {
		if err := catalog.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
	}
	var product *entity.Product
	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		product, err = repos.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = catalog.NormalizeName(*in.Name)
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.CategoryID != nil {
			categoryID := strings.TrimSpace(*in.CategoryID)
			if err := checkCategory(ctx, repos.Categories, categoryID); err != nil {
				return err
			}
			product.CategoryID = categoryID
		}
		product.UpdatedAt = time.Now()
		return repos.Products.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete archiva el producto y lo elimina junto a su historial y ventas, todo en una transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		product, err := repos.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		snapshot := &entity.DeletedProduct{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Stock:     product.Stock,
			DeletedAt: time.Now(),
		}
		if product.HasCategory() {
			cat, err := repos.Categories.GetByID(ctx, product.CategoryID)
			if err != nil {
				return err
			}
			if cat != nil {
				snapshot.CategoryName = cat.Name
			}
		}
		if err := repos.Archive.Create(ctx, snapshot); err != nil {
			return fmt.Errorf("archivar producto: %w", err)
		}
		if _, err := repos.Movements.DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("eliminar historial: %w", err)
		}
		if _, err := repos.Sales.DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("eliminar ventas: %w", err)
		}
		return repos.Products.Delete(ctx, id)
	})
}

// List lista productos filtrando por nombre (subcadena), stock > 0 y categoría.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		Name:       in.Name,
		InStock:    in.InStock,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	items := dto.ToProductList(list)
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// LowStock devuelve productos con stock estrictamente menor que threshold.
// threshold <= 0 usa el umbral configurado.
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockResponse, error) {
	if threshold <= 0 {
		threshold = uc.lowStockThreshold
	}
	list, err := uc.repo.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return &dto.LowStockResponse{Threshold: threshold, Items: dto.ToProductList(list)}, nil
}

// ListDeleted devuelve el archivo de productos eliminados, del más reciente al más antiguo.
func (uc *ProductUseCase) ListDeleted(ctx context.Context) ([]dto.DeletedProductResponse, error) {
	list, err := uc.archive.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeletedProductResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *dto.ToDeletedProductResponse(d))
	}
	return items, nil
}

func checkCategory(ctx context.Context, repo repository.CategoryRepository, id string) error {
	if id == "" {
		return nil
	}
	cat, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count número de productos del catálogo.
func (uc *ProductUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}
