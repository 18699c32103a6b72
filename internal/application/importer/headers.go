package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Columnas canónicas de la importación.
const (
	ColName     = "name"
	ColPrice    = "price"
	ColStock    = "stock"
	ColCategory = "category"
)

// RequiredColumns columnas que toda fila debe traer.
var RequiredColumns = []string{ColName, ColPrice, ColStock}

var aliases = map[string]string{
	"name":        ColName,
	"nombre":      ColName,
	"producto":    ColName,
	"price":       ColPrice,
	"precio":      ColPrice,
	"valor":       ColPrice,
	"stock":       ColStock,
	"cantidad":    ColStock,
	"existencias": ColStock,
	"category":    ColCategory,
	"categoria":   ColCategory,
}

// NormalizeHeader recorta, pasa a minúsculas y quita tildes; luego resuelve alias en español
// ("Categoría" → "category", "Existencias" → "stock"). Columnas desconocidas quedan normalizadas.
// Es seguro llamarla desde varias goroutines: el transformer y el Caser guardan estado
// interno, así que se crean en cada llamada.
func NormalizeHeader(h string) string {
	s := strings.Join(strings.Fields(h), " ")
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = cases.Fold().String(s)
	if canon, ok := aliases[s]; ok {
		return canon
	}
	return s
}

// NormalizeRow devuelve una copia de row con las claves normalizadas.
// Si dos columnas resuelven a la misma clave gana la primera no vacía.
func NormalizeRow(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		key := NormalizeHeader(k)
		if prev, ok := out[key]; ok && strings.TrimSpace(prev) != "" {
			continue
		}
		out[key] = v
	}
	return out
}
