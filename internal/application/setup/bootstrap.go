// Package setup contiene la inicialización idempotente de datos: usuario administrador,
// categorías por defecto y catálogo inicial. Se invoca una vez al arrancar.
package setup

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/pkg/logger"
)

// DefaultCategories categorías creadas si no existen.
var DefaultCategories = []string{"Alimentos", "Juguetes", "Higiene", "Accesorios", "Camas"}

// SeedProduct producto del catálogo inicial.
type SeedProduct struct {
	Name     string
	Price    int64
	Stock    int
	Category string
}

// InitialCatalog se carga solo si el catálogo está vacío.
var InitialCatalog = []SeedProduct{
	{"Alimento para perros", 50, 20, "Alimentos"},
	{"Alimento para gatos", 45, 15, "Alimentos"},
	{"Juguete para perros", 25, 10, "Juguetes"},
	{"Juguete para gatos", 20, 12, "Juguetes"},
	{"Collar antipulgas", 35, 8, "Accesorios"},
	{"Arena para gatos", 30, 25, "Higiene"},
	{"Shampoo para mascotas", 15, 18, "Higiene"},
	{"Cama para perros", 100, 5, "Camas"},
	{"Cama para gatos", 90, 6, "Camas"},
	{"Transportadora para mascotas", 120, 4, "Accesorios"},
}

// AdminEnsurer crea el administrador si no existe.
type AdminEnsurer interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

// CategoryEnsurer obtiene o crea una categoría.
type CategoryEnsurer interface {
	EnsureCategory(ctx context.Context, name string) (*dto.CategoryResponse, error)
}

// ProductSeeder crea productos y cuenta los existentes.
type ProductSeeder interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	Count(ctx context.Context) (int, error)
}

// Admin credenciales del administrador.
type Admin struct {
	Username string
	Password string
}

// Bootstrapper ejecuta la inicialización.
type Bootstrapper struct {
	admin      AdminEnsurer
	categories CategoryEnsurer
	products   ProductSeeder
	creds      Admin
	log        *logger.Logger
}

// NewBootstrapper construye el inicializador.
func NewBootstrapper(admin AdminEnsurer, categories CategoryEnsurer, products ProductSeeder, creds Admin, log *logger.Logger) *Bootstrapper {
	if log == nil {
		log = logger.Nop()
	}
	return &Bootstrapper{admin: admin, categories: categories, products: products, creds: creds, log: log}
}

// Result resume lo creado por Bootstrap.
type Result struct {
	AdminCreated    bool
	ProductsCreated int
}

// Bootstrap es idempotente: llamarlo varias veces no duplica datos.
func (b *Bootstrapper) Bootstrap(ctx context.Context) (Result, error) {
	var res Result

	created, err := b.admin.EnsureAdmin(ctx, b.creds.Username, b.creds.Password)
	if err != nil {
		return res, fmt.Errorf("setup: administrador: %w", err)
	}
	res.AdminCreated = created

	categoryIDs := make(map[string]string, len(DefaultCategories))
	for _, name := range DefaultCategories {
		cat, err := b.categories.EnsureCategory(ctx, name)
		if err != nil {
			return res, fmt.Errorf("setup: categoría %s: %w", name, err)
		}
		categoryIDs[name] = cat.ID
	}

	count, err := b.products.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("setup: contar productos: %w", err)
	}
	if count == 0 {
		for _, p := range InitialCatalog {
			_, err := b.products.Create(ctx, dto.CreateProductRequest{
				Name:       p.Name,
				Price:      decimal.NewFromInt(p.Price),
				Stock:      p.Stock,
				CategoryID: categoryIDs[p.Category],
			})
			if err != nil {
				return res, fmt.Errorf("setup: producto %s: %w", p.Name, err)
			}
			res.ProductsCreated++
		}
	}

	b.log.Info().
		Bool("admin_created", res.AdminCreated).
		Int("products_created", res.ProductsCreated).
		Msg("inicialización completada")
	return res, nil
}
