package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Veterinaria-api/internal/application/reporting"
)

// ReportHandler reportes de solo lectura (JSON y PDF).
type ReportHandler struct {
	reports *reporting.UseCase
	pdf     *reporting.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *reporting.UseCase, pdf *reporting.PDFUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf}
}

// SalesByProduct godoc
// @Summary      Ventas por producto
// @Description  Unidades, número de ventas e ingresos por producto, de más a menos vendido.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesByProductResponse
// @Router       /api/reports/sales-by-product [get]
func (h *ReportHandler) SalesByProduct(c *fiber.Ctx) error {
	out, err := h.reports.SalesByProduct(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Reporte de ventas (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	body, filename, err := h.pdf.SalesReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", filename, body)
}

// LowStockPDF godoc
// @Summary      Reporte de stock bajo (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	body, filename, err := h.pdf.LowStockReportPDF(c.UserContext(), c.QueryInt("threshold", 0))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", filename, body)
}
