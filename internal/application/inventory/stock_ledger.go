package inventory

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

// StockLedgerUseCase ajustes manuales de stock y consulta del historial.
// Ajustes y ventas comparten el mismo camino de escritura (applyDelta).
type StockLedgerUseCase struct {
	tx        repository.TxRunner
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	metrics   Metrics
}

// NewStockLedgerUseCase construye el caso de uso. metrics puede ser nil.
func NewStockLedgerUseCase(
	tx repository.TxRunner,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	metrics Metrics,
) *StockLedgerUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &StockLedgerUseCase{tx: tx, products: products, movements: movements, metrics: metrics}
}

// AdjustStock suma delta (con signo) al stock del producto y agrega una entrada al libro.
// Si el stock quedaría negativo devuelve ErrInsufficientStock y no modifica nada.
func (uc *StockLedgerUseCase) AdjustStock(ctx context.Context, productID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if err := catalog.ValidateAdjustment(in.Delta, in.Reason); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	var (
		product  *entity.Product
		movement *entity.StockMovement
	)
	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		movement, err = applyDelta(ctx, repos, productID, in.Delta, reason, "", time.Now())
		if err != nil {
			return err
		}
		product, err = repos.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.StockAdjusted(in.Delta)
	return &dto.AdjustStockResponse{
		Product:  *dto.ToProductResponse(product),
		Movement: *dto.ToStockMovementResponse(movement),
	}, nil
}

// History devuelve el historial del producto, de la entrada más antigua a la más reciente.
func (uc *StockLedgerUseCase) History(ctx context.Context, productID string) (*dto.StockHistoryResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movements.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToStockMovementResponse(m))
	}
	return &dto.StockHistoryResponse{ProductID: productID, Items: items}, nil
}

// applyDelta es el único camino que modifica el stock: actualización condicional
// (stock + delta >= 0) seguida de la entrada en el libro, con los repos de la transacción.
func applyDelta(
	ctx context.Context,
	repos repository.TxRepos,
	productID string,
	delta int,
	reason, saleID string,
	now time.Time,
) (*entity.StockMovement, error) {
	before, after, err := repos.Products.ApplyStockDelta(ctx, productID, delta)
	if err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Delta:       delta,
		Reason:      reason,
		StockBefore: before,
		StockAfter:  after,
		SaleID:      saleID,
		CreatedAt:   now,
	}
	if err := repos.Movements.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	return movement, nil
}
