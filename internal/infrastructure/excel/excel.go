// Package excel lee y escribe archivos .xlsx del catálogo con tealeg/xlsx.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
)

// SheetName nombre de la hoja exportada.
const SheetName = "Productos"

// ContentType MIME de un .xlsx.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Codec implementa importer.TableReader y importer.TableWriter.
type Codec struct{}

// NewCodec construye el codec.
func NewCodec() *Codec { return &Codec{} }

// ReadRows lee la primera hoja: la primera fila es la cabecera y cada fila siguiente se
// devuelve como cabecera → valor. Toda fila trae todas las columnas de la cabecera
// (celdas vacías → ""). Las filas completamente vacías se omiten.
func (c *Codec) ReadRows(r io.ReaderAt, size int64) ([]map[string]string, error) {
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, &domain.FormatError{Reason: fmt.Sprintf("no se pudo leer el archivo Excel: %v", err)}
	}
	if len(file.Sheets) == 0 {
		return nil, &domain.FormatError{Reason: "el archivo no tiene hojas"}
	}
	sheet := file.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, &domain.FormatError{Reason: "falta la fila de cabecera"}
	}

	headers := make([]string, 0, len(sheet.Rows[0].Cells))
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, strings.TrimSpace(cell.String()))
	}
	if allBlank(headers) {
		return nil, &domain.FormatError{Reason: "la fila de cabecera está vacía"}
	}

	rows := make([]map[string]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		if row == nil {
			continue
		}
		values := make(map[string]string, len(headers))
		blank := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			v := ""
			if i < len(row.Cells) {
				v = strings.TrimSpace(row.Cells[i].String())
			}
			if v != "" {
				blank = false
			}
			values[h] = v
		}
		if blank {
			continue
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// WriteCatalog escribe el catálogo con cabecera ID, Nombre, Categoría, Precio, Stock.
func (c *Codec) WriteCatalog(w io.Writer, rows []dto.ProductExportRow) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("excel: crear hoja: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Nombre", "Categoría", "Precio", "Stock"} {
		header.AddCell().SetString(h)
	}
	for _, p := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(p.Stock)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return nil
}

func allBlank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
