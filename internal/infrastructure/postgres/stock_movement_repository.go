package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de stock sobre PostgreSQL (solo INSERT/SELECT;
// el DELETE ocurre únicamente al eliminar el producto).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de stock.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega una entrada al libro.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, delta, reason, stock_before, stock_after, sale_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Delta, m.Reason, m.StockBefore, m.StockAfter, nullString(m.SaleID), m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto, de la entrada más antigua a la más reciente.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, delta, reason, stock_before, stock_after, sale_id, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at, seq`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m      entity.StockMovement
			saleID *string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.Reason, &m.StockBefore, &m.StockAfter, &saleID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if saleID != nil {
			m.SaleID = *saleID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *StockMovementRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete stock movements: %w", err)
	}
	return tag.RowsAffected(), nil
}
