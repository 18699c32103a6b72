// Package pdf genera los documentos del negocio con Maroto v2: recibo de venta,
// reporte de ventas por producto y listado de stock bajo.
//
// Layout común (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda      │  Título + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas propias de cada documento                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/application/reporting"
)

var _ reporting.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reporting.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	shopName string
}

// NewMarotoPDFGenerator construye el generador; shopName va en la cabecera de cada documento.
func NewMarotoPDFGenerator(shopName string) *MarotoPDFGenerator {
	if shopName == "" {
		shopName = "Veterinaria"
	}
	return &MarotoPDFGenerator{shopName: shopName}
}

// SaleReceipt genera el recibo de una venta.
func (g *MarotoPDFGenerator) SaleReceipt(_ context.Context, sale dto.SaleResponse) ([]byte, error) {
	m := g.newDocument("Recibo de venta")

	m.AddRows(g.headerRow("RECIBO DE VENTA", sale.CreatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("N° "+sale.ID, props.Text{Size: 8, Top: 2, Color: colorGray}),
	)))

	m.AddRows(tableHeaderRow([]column{
		{"Producto", 6, align.Left},
		{"Cant.", 2, align.Center},
		{"Precio Unit.", 2, align.Right},
		{"Total", 2, align.Right},
	}))
	m.AddRows(tableRow([]cell{
		{sale.ProductName, 6, align.Left, false},
		{strconv.Itoa(sale.Quantity), 2, align.Center, false},
		{"$" + formatMoney(sale.UnitPrice), 2, align.Right, false},
		{"$" + formatMoney(sale.Total), 2, align.Right, false},
	}))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("TOTAL A PAGAR:", "$"+formatMoney(sale.Total)))
	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New("Gracias por su compra.", props.Text{Size: 8, Top: 4, Align: align.Center, Color: colorGray}),
	)))

	return generate(m)
}

// SalesReport genera el reporte de ventas: resumen por producto y detalle de ventas.
func (g *MarotoPDFGenerator) SalesReport(
	_ context.Context,
	report dto.SalesByProductResponse,
	sales []dto.SaleResponse,
	generatedAt time.Time,
) ([]byte, error) {
	m := g.newDocument("Reporte de ventas")

	m.AddRows(g.headerRow("REPORTE DE VENTAS", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionRow("VENTAS POR PRODUCTO"))

	m.AddRows(tableHeaderRow([]column{
		{"Producto", 6, align.Left},
		{"Ventas", 2, align.Center},
		{"Unidades", 2, align.Center},
		{"Ingresos", 2, align.Right},
	}))
	for _, it := range report.Items {
		m.AddRows(tableRow([]cell{
			{it.ProductName, 6, align.Left, false},
			{strconv.Itoa(it.SaleCount), 2, align.Center, false},
			{strconv.Itoa(it.UnitsSold), 2, align.Center, false},
			{"$" + formatMoney(it.Revenue), 2, align.Right, false},
		}))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("Unidades vendidas:", strconv.Itoa(report.TotalUnits)))
	m.AddRows(totalRow("TOTAL INGRESOS:", "$"+formatMoney(report.TotalRevenue)))

	if len(sales) > 0 {
		m.AddRows(line.NewRow(4))
		m.AddRows(sectionRow("DETALLE DE VENTAS"))
		m.AddRows(tableHeaderRow([]column{
			{"Fecha", 3, align.Left},
			{"Producto", 5, align.Left},
			{"Cant.", 2, align.Center},
			{"Total", 2, align.Right},
		}))
		for _, s := range sales {
			m.AddRows(tableRow([]cell{
				{s.CreatedAt.Format("02/01/2006 15:04"), 3, align.Left, false},
				{s.ProductName, 5, align.Left, false},
				{strconv.Itoa(s.Quantity), 2, align.Center, false},
				{"$" + formatMoney(s.Total), 2, align.Right, false},
			}))
		}
	}

	return generate(m)
}

// LowStockReport genera el listado de productos por debajo del umbral.
func (g *MarotoPDFGenerator) LowStockReport(_ context.Context, report dto.LowStockResponse, generatedAt time.Time) ([]byte, error) {
	m := g.newDocument("Productos con stock bajo")

	m.AddRows(g.headerRow("STOCK BAJO", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionRow(fmt.Sprintf("PRODUCTOS CON MENOS DE %d UNIDADES", report.Threshold)))

	if len(report.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay productos por debajo del umbral.", props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
		return generate(m)
	}

	m.AddRows(tableHeaderRow([]column{
		{"Producto", 8, align.Left},
		{"Precio", 2, align.Right},
		{"Stock", 2, align.Center},
	}))
	for _, p := range report.Items {
		c := cell{strconv.Itoa(p.Stock), 2, align.Center, false}
		if p.Stock == 0 {
			c.alert = true
		}
		m.AddRows(tableRow([]cell{
			{p.Name, 8, align.Left, false},
			{"$" + formatMoney(p.Price), 2, align.Right, false},
			c,
		}))
	}
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.shopName, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: nombre de la tienda (izq) y título + fecha (der).
func (g *MarotoPDFGenerator) headerRow(title string, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos y accesorios para mascotas", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

type cell struct {
	value string
	size  int
	align align.Type
	alert bool
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func tableRow(cells []cell) core.Row {
	out := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		p := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
		if c.alert {
			p.Color = colorAlert
			p.Style = fontstyle.Bold
		}
		out = append(out, col.New(c.size).Add(text.New(c.value, p)))
	}
	return row.New(7).Add(out...)
}

// totalRow: etiqueta y valor alineados a la derecha.
func totalRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 1, Color: colorPrimary,
		})),
	)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
