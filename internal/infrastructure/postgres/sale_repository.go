package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleSelect = `
	SELECT s.id, s.product_id, s.quantity, s.unit_price, s.created_at, p.name
	FROM sales s
	JOIN products p ON p.id = s.product_id`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. La FK a products convierte un producto inexistente en ErrNotFound.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ID, s.ProductID, s.Quantity, s.UnitPrice, s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*repository.SaleRecord, error) {
	rec, err := scanSale(r.q.QueryRow(ctx, saleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return rec, nil
}

// List ventas de la más reciente a la más antigua; seq desempata ventas del mismo instante.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*repository.SaleRecord, error) {
	query := saleSelect
	var args []any
	if strings.TrimSpace(f.ProductName) != "" {
		args = append(args, likePattern(f.ProductName))
		query += ` WHERE p.name ILIKE $1`
	}
	query += ` ORDER BY s.created_at DESC, s.seq DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleRecord
	for rows.Next() {
		rec, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *SaleRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete sales: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSale(row pgx.Row) (*repository.SaleRecord, error) {
	var rec repository.SaleRecord
	err := row.Scan(&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UnitPrice, &rec.CreatedAt, &rec.ProductName)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
