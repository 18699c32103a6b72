// Package importer implementa la importación masiva de productos desde una tabla
// (filas columna → valor) y la exportación del catálogo.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// ProductCreator crea productos aplicando las reglas del catálogo.
type ProductCreator interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
}

// CategoryResolver obtiene o crea una categoría por nombre.
type CategoryResolver interface {
	EnsureCategory(ctx context.Context, name string) (*dto.CategoryResponse, error)
}

// TableReader convierte un archivo tabular en filas. Errores de lectura deben ser *domain.FormatError.
type TableReader interface {
	ReadRows(r io.ReaderAt, size int64) ([]map[string]string, error)
}

// TableWriter escribe el catálogo como archivo tabular.
type TableWriter interface {
	WriteCatalog(w io.Writer, rows []dto.ProductExportRow) error
}

// Metrics cuenta filas importadas y rechazadas.
type Metrics interface {
	RowsImported(inserted, rejected int)
}

type nopMetrics struct{}

func (nopMetrics) RowsImported(int, int) {}

// UseCase importación y exportación del catálogo.
type UseCase struct {
	products     ProductCreator
	categories   CategoryResolver
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reader       TableReader
	writer       TableWriter
	metrics      Metrics
}

// NewUseCase construye el caso de uso. metrics puede ser nil.
func NewUseCase(
	products ProductCreator,
	categories CategoryResolver,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reader TableReader,
	writer TableWriter,
	metrics Metrics,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		products:     products,
		categories:   categories,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reader:       reader,
		writer:       writer,
		metrics:      metrics,
	}
}

// ImportFile lee el archivo con el TableReader y delega en ImportFromTable.
func (uc *UseCase) ImportFile(ctx context.Context, r io.ReaderAt, size int64) (*dto.ImportResult, error) {
	rows, err := uc.reader.ReadRows(r, size)
	if err != nil {
		return nil, err
	}
	return uc.ImportFromTable(ctx, rows)
}

// ImportFromTable valida que todas las filas tengan las columnas obligatorias
// (name, price, stock); si falta alguna la importación completa falla con FormatError.
// Luego procesa cada fila por separado: las inválidas se reportan y no detienen el lote.
func (uc *UseCase) ImportFromTable(ctx context.Context, rows []map[string]string) (*dto.ImportResult, error) {
	if len(rows) == 0 {
		return nil, &domain.FormatError{Reason: "el archivo no contiene filas"}
	}
	normalized := make([]map[string]string, len(rows))
	for i, row := range rows {
		normalized[i] = NormalizeRow(row)
		for _, col := range RequiredColumns {
			if _, ok := normalized[i][col]; !ok {
				return nil, &domain.FormatError{Row: i + 1, Column: col, Reason: "columna obligatoria ausente"}
			}
		}
	}

	result := &dto.ImportResult{Errors: []dto.ImportRowError{}}
	for i, row := range normalized {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := uc.importRow(ctx, row); err != nil {
			if !isRowError(err) {
				return nil, err
			}
			result.Rejected++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}
	uc.metrics.RowsImported(result.Inserted, result.Rejected)
	log.Info().
		Int("inserted", result.Inserted).
		Int("rejected", result.Rejected).
		Msg("importación de productos finalizada")
	return result, nil
}

func (uc *UseCase) importRow(ctx context.Context, row map[string]string) error {
	price, err := parsePrice(row[ColPrice])
	if err != nil {
		return err
	}
	stock, err := parseStock(row[ColStock])
	if err != nil {
		return err
	}
	req := dto.CreateProductRequest{Name: row[ColName], Price: price, Stock: stock}
	if name := strings.TrimSpace(row[ColCategory]); name != "" {
		cat, err := uc.categories.EnsureCategory(ctx, name)
		if err != nil {
			return err
		}
		req.CategoryID = cat.ID
	}
	_, err = uc.products.Create(ctx, req)
	return err
}

// isRowError distingue errores de datos de la fila de fallos de almacenamiento.
func isRowError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicate)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	if s == "" {
		return decimal.Zero, domain.NewFieldError(ColPrice, "el precio es obligatorio")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewFieldError(ColPrice, fmt.Sprintf("precio inválido %q", raw))
	}
	return d, nil
}

func parseStock(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewFieldError(ColStock, "el stock es obligatorio")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, domain.NewFieldError(ColStock, fmt.Sprintf("stock inválido %q", raw))
	}
	// IntPart desborda en silencio fuera de int64
	if d.Abs().GreaterThan(decimal.NewFromInt(catalog.MaxStock)) {
		return 0, domain.NewFieldError(ColStock, fmt.Sprintf("stock fuera de rango %q (máximo %d)", raw, catalog.MaxStock))
	}
	return int(d.IntPart()), nil
}

// Export escribe el catálogo completo (id, nombre, categoría, precio, stock).
func (uc *UseCase) Export(ctx context.Context, w io.Writer) error {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	rows := make([]dto.ProductExportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, dto.ProductExportRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: names[p.CategoryID],
			Price:    p.Price,
			Stock:    p.Stock,
		})
	}
	return uc.writer.WriteCatalog(w, rows)
}
