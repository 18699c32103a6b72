// Package catalog contiene las reglas de validación del catálogo: productos, categorías,
// ajustes de stock y ventas. Se invocan explícitamente antes de cada mutación.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
)

// Límites de longitud alineados con las columnas de la base de datos.
const (
	MaxProductNameLen  = 100
	MaxCategoryNameLen = 100
	MaxReasonLen       = 255
)

// Límites numéricos de las columnas: stock y delta son INTEGER, price es NUMERIC(14,2).
const (
	MaxStock      = math.MaxInt32
	PriceDecimals = 2
)

// MaxPrice cota superior exclusiva del precio (12 dígitos enteros).
var MaxPrice = decimal.New(1, 12)

// NormalizeName recorta espacios y colapsa espacios internos repetidos.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValidateProductName exige nombre no vacío y dentro del límite de longitud.
func ValidateProductName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return domain.NewFieldError("name", "el nombre es obligatorio")
	}
	if len([]rune(name)) > MaxProductNameLen {
		return domain.NewFieldError("name", "el nombre supera 100 caracteres")
	}
	return nil
}

// ValidatePrice exige precio no negativo, menor que MaxPrice y con a lo sumo dos decimales.
func ValidatePrice(price decimal.Decimal) error {
	switch {
	case price.IsNegative():
		return domain.NewFieldError("price", "el precio no puede ser negativo")
	case price.GreaterThanOrEqual(MaxPrice):
		return domain.NewFieldError("price", "el precio debe ser menor que "+MaxPrice.String())
	case !price.Equal(price.Truncate(PriceDecimals)):
		return domain.NewFieldError("price", "el precio admite como máximo 2 decimales")
	}
	return nil
}

// ValidateStock exige stock entre 0 y MaxStock.
func ValidateStock(stock int) error {
	if stock < 0 {
		return domain.NewFieldError("stock", "el stock no puede ser negativo")
	}
	if stock > MaxStock {
		return domain.NewFieldError("stock", fmt.Sprintf("el stock no puede superar %d", MaxStock))
	}
	return nil
}

// ValidateNewProduct valida todos los campos de un producto nuevo y devuelve
// los errores agrupados (errors.Join), o nil si es válido.
func ValidateNewProduct(name string, price decimal.Decimal, stock int) error {
	return errors.Join(
		ValidateProductName(name),
		ValidatePrice(price),
		ValidateStock(stock),
	)
}

// ValidateCategoryName exige nombre de categoría no vacío.
func ValidateCategoryName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return domain.NewFieldError("name", "el nombre de la categoría es obligatorio")
	}
	if len([]rune(name)) > MaxCategoryNameLen {
		return domain.NewFieldError("name", "el nombre supera 100 caracteres")
	}
	return nil
}

// ValidateAdjustment exige delta distinto de cero y un motivo.
func ValidateAdjustment(delta int, reason string) error {
	var errs []error
	switch {
	case delta == 0:
		errs = append(errs, domain.NewFieldError("delta", "el ajuste no puede ser cero"))
	case delta > MaxStock || delta < -MaxStock:
		errs = append(errs, domain.NewFieldError("delta", fmt.Sprintf("el ajuste debe estar entre -%d y %d", MaxStock, MaxStock)))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		errs = append(errs, domain.NewFieldError("reason", "el motivo es obligatorio"))
	} else if len([]rune(reason)) > MaxReasonLen {
		errs = append(errs, domain.NewFieldError("reason", "el motivo supera 255 caracteres"))
	}
	return errors.Join(errs...)
}

// ValidateSaleQuantity exige cantidad estrictamente positiva y no mayor que MaxStock.
func ValidateSaleQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.NewFieldError("quantity", "la cantidad debe ser mayor que cero")
	}
	if quantity > MaxStock {
		return domain.NewFieldError("quantity", fmt.Sprintf("la cantidad no puede superar %d", MaxStock))
	}
	return nil
}
