// Package memory implementa los puertos de repositorio en memoria.
// Respeta los mismos contratos que el adaptador PostgreSQL (actualización condicional
// de stock, transacciones con rollback). Solo se usa en pruebas; cmd/ siempre usa PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

// Operaciones en las que se puede inyectar un fallo con FailOn.
const (
	OpProductCreate  = "products.create"
	OpProductUpdate  = "products.update"
	OpProductStock   = "products.stock"
	OpProductDelete  = "products.delete"
	OpSaleCreate     = "sales.create"
	OpSaleDelete     = "sales.delete"
	OpMovementCreate = "movements.create"
	OpMovementDelete = "movements.delete"
	OpArchiveCreate  = "archive.create"
	OpCategoryCreate = "categories.create"
	OpUserCreate     = "users.create"
)

type data struct {
	products   map[string]*entity.Product
	productSeq []string // orden de inserción
	categories map[string]*entity.Category
	sales      []*entity.Sale
	movements  []*entity.StockMovement
	archive    []*entity.DeletedProduct
	users      map[string]*entity.User
}

func newData() *data {
	return &data{
		products:   map[string]*entity.Product{},
		categories: map[string]*entity.Category{},
		users:      map[string]*entity.User{},
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.products {
		p := *v
		c.products[k] = &p
	}
	c.productSeq = append([]string(nil), d.productSeq...)
	for k, v := range d.categories {
		cat := *v
		c.categories[k] = &cat
	}
	for _, s := range d.sales {
		sale := *s
		c.sales = append(c.sales, &sale)
	}
	for _, m := range d.movements {
		mov := *m
		c.movements = append(c.movements, &mov)
	}
	for _, a := range d.archive {
		snap := *a
		c.archive = append(c.archive, &snap)
	}
	for k, v := range d.users {
		u := *v
		c.users[k] = &u
	}
	return c
}

// Store contiene el estado compartido y actúa como TxRunner.
type Store struct {
	mu   sync.Mutex // protege data y failures
	txMu sync.Mutex // serializa transacciones y escrituras fuera de ellas

	data     *data
	failures map[string]error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newData(), failures: map[string]error{}}
}

// FailOn hace que la próxima ejecución de op devuelva err (una sola vez).
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) injected(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn termina sin error.
func (s *Store) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	h := handle{store: s, tx: snapshot}
	if err := fn(h.repos()); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
	return nil
}

// Repos devuelve repositorios que operan directamente sobre el estado (sin transacción).
func (s *Store) Repos() repository.TxRepos {
	return handle{store: s}.repos()
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository { return &ProductRepo{h: handle{store: s}} }

// Categories repositorio de categorías fuera de transacción.
func (s *Store) Categories() repository.CategoryRepository {
	return &CategoryRepo{h: handle{store: s}}
}

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() repository.SaleRepository { return &SaleRepo{h: handle{store: s}} }

// Movements libro de stock fuera de transacción.
func (s *Store) Movements() repository.StockMovementRepository {
	return &StockMovementRepo{h: handle{store: s}}
}

// Archive archivo de productos eliminados fuera de transacción.
func (s *Store) Archive() repository.DeletedProductRepository {
	return &DeletedProductRepo{h: handle{store: s}}
}

// Users repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &UserRepo{h: handle{store: s}} }

// Reports repositorio de reportes.
func (s *Store) Reports() repository.ReportRepository { return &ReportRepo{h: handle{store: s}} }

// handle apunta al estado compartido (tx == nil) o a la copia de una transacción.
type handle struct {
	store *Store
	tx    *data
}

func (h handle) repos() repository.TxRepos {
	return repository.TxRepos{
		Products:   &ProductRepo{h: h},
		Categories: &CategoryRepo{h: h},
		Sales:      &SaleRepo{h: h},
		Movements:  &StockMovementRepo{h: h},
		Archive:    &DeletedProductRepo{h: h},
	}
}

// with ejecuta fn con acceso exclusivo al estado correspondiente. op vacío indica lectura.
// Una escritura fuera de transacción espera a que termine la transacción en curso; si no,
// Run publicaría su copia encima y la escritura se perdería.
func (h handle) with(op string, fn func(d *data) error) error {
	if op != "" {
		if err := h.store.injected(op); err != nil {
			return err
		}
	}
	if h.tx != nil {
		return fn(h.tx)
	}
	if op != "" {
		h.store.txMu.Lock()
		defer h.store.txMu.Unlock()
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return fn(h.store.data)
}
