package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/inventory"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository        = (*ProductRepo)(nil)
	_ repository.CategoryRepository       = (*CategoryRepo)(nil)
	_ repository.SaleRepository           = (*SaleRepo)(nil)
	_ repository.StockMovementRepository  = (*StockMovementRepo)(nil)
	_ repository.DeletedProductRepository = (*DeletedProductRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
)

// ── Productos ────────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct{ h handle }

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.h.with(OpProductCreate, func(d *data) error {
		if _, ok := d.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		p := *product
		d.products[p.ID] = &p
		d.productSeq = append(d.productSeq, p.ID)
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.h.with("", func(d *data) error {
		if p, ok := d.products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.h.with(OpProductUpdate, func(d *data) error {
		p, ok := d.products[product.ID]
		if !ok {
			return domain.ErrNotFound
		}
		p.Name = product.Name
		p.Price = product.Price
		p.CategoryID = product.CategoryID
		p.UpdatedAt = product.UpdatedAt
		return nil
	})
}

func (r *ProductRepo) ApplyStockDelta(_ context.Context, id string, delta int) (before, after int, err error) {
	err = r.h.with(OpProductStock, func(d *data) error {
		p, ok := d.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		next, err := inventory.NextStock(p.Stock, delta)
		if err != nil {
			return err
		}
		before, after = p.Stock, next
		p.Stock = next
		return nil
	})
	return before, after, err
}

func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	err := r.h.with("", func(d *data) error {
		for _, id := range d.productSeq {
			p, ok := d.products[id]
			if !ok {
				continue
			}
			if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
				continue
			}
			if filter.InStock && p.Stock <= 0 {
				continue
			}
			if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
				continue
			}
			cp := *p
			out = append(out, &cp)
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, err
}

func (r *ProductRepo) ListBelowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.h.with("", func(d *data) error {
		for _, id := range d.productSeq {
			if p, ok := d.products[id]; ok && p.Stock < threshold {
				cp := *p
				out = append(out, &cp)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, err
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.h.with(OpProductDelete, func(d *data) error {
		if _, ok := d.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.products, id)
		seq := d.productSeq[:0]
		for _, pid := range d.productSeq {
			if pid != id {
				seq = append(seq, pid)
			}
		}
		d.productSeq = seq
		return nil
	})
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.h.with("", func(d *data) error {
		n = len(d.products)
		return nil
	})
	return n, err
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct{ h handle }

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	return r.h.with(OpCategoryCreate, func(d *data) error {
		for _, c := range d.categories {
			if strings.EqualFold(c.Name, category.Name) {
				return domain.ErrDuplicate
			}
		}
		c := *category
		d.categories[c.ID] = &c
		return nil
	})
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	var out *entity.Category
	err := r.h.with("", func(d *data) error {
		if c, ok := d.categories[id]; ok {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	err := r.h.with("", func(d *data) error {
		for _, c := range d.categories {
			if strings.EqualFold(c.Name, name) {
				cp := *c
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.h.with("", func(d *data) error {
		for _, c := range d.categories {
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

// ── Ventas ───────────────────────────────────────────────────────────────────

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct{ h handle }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.h.with(OpSaleCreate, func(d *data) error {
		if _, ok := d.products[sale.ProductID]; !ok {
			return domain.ErrNotFound // violación de FK
		}
		s := *sale
		d.sales = append(d.sales, &s)
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*repository.SaleRecord, error) {
	var out *repository.SaleRecord
	err := r.h.with("", func(d *data) error {
		for _, s := range d.sales {
			if s.ID == id {
				out = saleRecord(d, s)
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]*repository.SaleRecord, error) {
	var out []*repository.SaleRecord
	name := strings.ToLower(strings.TrimSpace(filter.ProductName))
	err := r.h.with("", func(d *data) error {
		for i := len(d.sales) - 1; i >= 0; i-- {
			rec := saleRecord(d, d.sales[i])
			if name != "" && !strings.Contains(strings.ToLower(rec.ProductName), name) {
				continue
			}
			out = append(out, rec)
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	var n int64
	err := r.h.with(OpSaleDelete, func(d *data) error {
		kept := d.sales[:0]
		for _, s := range d.sales {
			if s.ProductID == productID {
				n++
				continue
			}
			kept = append(kept, s)
		}
		d.sales = kept
		return nil
	})
	return n, err
}

func saleRecord(d *data, s *entity.Sale) *repository.SaleRecord {
	rec := &repository.SaleRecord{Sale: *s}
	if p, ok := d.products[s.ProductID]; ok {
		rec.ProductName = p.Name
	}
	return rec
}

// ── Libro de stock ───────────────────────────────────────────────────────────

// StockMovementRepo implementación en memoria de StockMovementRepository.
type StockMovementRepo struct{ h handle }

func (r *StockMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	return r.h.with(OpMovementCreate, func(d *data) error {
		if _, ok := d.products[movement.ProductID]; !ok {
			return domain.ErrNotFound
		}
		m := *movement
		d.movements = append(d.movements, &m)
		return nil
	})
}

func (r *StockMovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.h.with("", func(d *data) error {
		for _, m := range d.movements {
			if m.ProductID == productID {
				cp := *m
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func (r *StockMovementRepo) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	var n int64
	err := r.h.with(OpMovementDelete, func(d *data) error {
		kept := d.movements[:0]
		for _, m := range d.movements {
			if m.ProductID == productID {
				n++
				continue
			}
			kept = append(kept, m)
		}
		d.movements = kept
		return nil
	})
	return n, err
}

// ── Archivo ──────────────────────────────────────────────────────────────────

// DeletedProductRepo implementación en memoria de DeletedProductRepository.
type DeletedProductRepo struct{ h handle }

func (r *DeletedProductRepo) Create(_ context.Context, snapshot *entity.DeletedProduct) error {
	return r.h.with(OpArchiveCreate, func(d *data) error {
		s := *snapshot
		d.archive = append(d.archive, &s)
		return nil
	})
}

func (r *DeletedProductRepo) List(_ context.Context) ([]*entity.DeletedProduct, error) {
	var out []*entity.DeletedProduct
	err := r.h.with("", func(d *data) error {
		for i := len(d.archive) - 1; i >= 0; i-- {
			cp := *d.archive[i]
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ h handle }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.h.with(OpUserCreate, func(d *data) error {
		key := strings.ToLower(user.Username)
		if _, ok := d.users[key]; ok {
			return domain.ErrDuplicate
		}
		u := *user
		d.users[key] = &u
		return nil
	})
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.h.with("", func(d *data) error {
		if u, ok := d.users[strings.ToLower(username)]; ok {
			cp := *u
			out = &cp
		}
		return nil
	})
	return out, err
}
