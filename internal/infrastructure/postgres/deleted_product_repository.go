package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.DeletedProductRepository = (*DeletedProductRepo)(nil)

// DeletedProductRepo archivo de productos eliminados. No tiene FK a products:
// la fotografía sobrevive al producto.
type DeletedProductRepo struct {
	q Querier
}

// NewDeletedProductRepository construye el adaptador del archivo.
func NewDeletedProductRepository(q Querier) *DeletedProductRepo {
	return &DeletedProductRepo{q: q}
}

func (r *DeletedProductRepo) Create(ctx context.Context, d *entity.DeletedProduct) error {
	query := `
		INSERT INTO deleted_products (id, product_id, name, price, stock, category_name, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, d.ID, d.ProductID, d.Name, d.Price, d.Stock, nullString(d.CategoryName), d.DeletedAt)
	if err != nil {
		return fmt.Errorf("insert deleted product: %w", err)
	}
	return nil
}

func (r *DeletedProductRepo) List(ctx context.Context) ([]*entity.DeletedProduct, error) {
	query := `
		SELECT id, product_id, name, price, stock, category_name, deleted_at
		FROM deleted_products ORDER BY deleted_at DESC, seq DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list deleted products: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeletedProduct
	for rows.Next() {
		var (
			d        entity.DeletedProduct
			category *string
		)
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Name, &d.Price, &d.Stock, &category, &d.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan deleted product: %w", err)
		}
		if category != nil {
			d.CategoryName = *category
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
