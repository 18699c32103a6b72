package dto

import "github.com/shopspring/decimal"

// ImportRowsRequest body para POST /api/products/import/rows: filas como mapas columna → valor.
type ImportRowsRequest struct {
	Rows []map[string]string `json:"rows"`
}

// ImportRowError fila rechazada y motivo. Row es 1-based sobre las filas de datos.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult resumen de una importación masiva.
type ImportResult struct {
	Inserted int              `json:"inserted"`
	Rejected int              `json:"rejected"`
	Errors   []ImportRowError `json:"errors"`
}

// ProductExportRow fila de la exportación del catálogo.
type ProductExportRow struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
}
