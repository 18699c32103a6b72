package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
)

// DocumentGenerator renderiza documentos a partir de datos ya calculados.
// El núcleo no conoce la librería de PDF.
type DocumentGenerator interface {
	SaleReceipt(ctx context.Context, sale dto.SaleResponse) ([]byte, error)
	SalesReport(ctx context.Context, report dto.SalesByProductResponse, sales []dto.SaleResponse, generatedAt time.Time) ([]byte, error)
	LowStockReport(ctx context.Context, report dto.LowStockResponse, generatedAt time.Time) ([]byte, error)
}

// SaleGetter obtiene una venta por ID.
type SaleGetter interface {
	GetSale(ctx context.Context, id string) (*dto.SaleResponse, error)
}

// PDFUseCase genera recibos y reportes en PDF.
type PDFUseCase struct {
	reports   *UseCase
	sales     SaleGetter
	generator DocumentGenerator
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(reports *UseCase, sales SaleGetter, generator DocumentGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, sales: sales, generator: generator, now: time.Now}
}

// SaleReceiptPDF genera el recibo de una venta.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename = recibo_<8 primeros del id>.pdf
//   - domain.ErrNotFound         si la venta no existe.
func (uc *PDFUseCase) SaleReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.sales.GetSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.SaleReceipt(ctx, *sale)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo_%s.pdf", shortID(sale.ID)), nil
}

// SalesReportPDF genera el reporte de ventas por producto con el detalle de ventas.
func (uc *PDFUseCase) SalesReportPDF(ctx context.Context) ([]byte, string, error) {
	report, err := uc.reports.SalesByProduct(ctx)
	if err != nil {
		return nil, "", err
	}
	sales, err := uc.reports.ListSales(ctx, "")
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdfBytes, err := uc.generator.SalesReport(ctx, *report, sales.Items, now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reporte_ventas_%s.pdf", now.Format("20060102")), nil
}

// LowStockReportPDF genera el listado de productos a reponer.
func (uc *PDFUseCase) LowStockReportPDF(ctx context.Context, threshold int) ([]byte, string, error) {
	report, err := uc.reports.LowStock(ctx, threshold)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdfBytes, err := uc.generator.LowStockReport(ctx, *report, now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("stock_bajo_%s.pdf", now.Format("20060102")), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
