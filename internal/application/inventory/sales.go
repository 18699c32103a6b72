package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// SalesUseCase registra ventas y las consulta.
type SalesUseCase struct {
	tx      repository.TxRunner
	sales   repository.SaleRepository
	metrics Metrics
}

// NewSalesUseCase construye el caso de uso. metrics puede ser nil.
func NewSalesUseCase(tx repository.TxRunner, sales repository.SaleRepository, metrics Metrics) *SalesUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &SalesUseCase{tx: tx, sales: sales, metrics: metrics}
}

// RecordSale descuenta quantity del stock, crea la venta con el precio vigente y agrega
// la entrada "sale" al libro. Las tres escrituras van en una sola transacción.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if err := catalog.ValidateSaleQuantity(in.Quantity); err != nil {
		return nil, err
	}
	var (
		sale    *entity.Sale
		product *entity.Product
	)
	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		product, err = repos.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		sale = &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
			CreatedAt: now,
		}
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}
		// si el stock no alcanza, Run revierte también el insert de la venta
		movement, err := applyDelta(ctx, repos, product.ID, -in.Quantity, entity.StockReasonSale, sale.ID, now)
		if err != nil {
			return err
		}
		product.Stock = movement.StockAfter
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.SaleRecorded(in.Quantity)
	return dto.ToSaleResponse(sale, product.Name), nil
}

// GetSale obtiene una venta con el nombre del producto; ErrNotFound si no existe.
func (uc *SalesUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	rec, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToSaleRecordResponse(rec), nil
}

// ListSales lista ventas de la más reciente a la más antigua, opcionalmente por nombre de producto.
func (uc *SalesUseCase) ListSales(ctx context.Context, productName string) (*dto.SaleListResponse, error) {
	list, err := uc.sales.List(ctx, repository.SaleFilter{ProductName: productName})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *dto.ToSaleRecordResponse(r))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}
