package catalog_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
)

func TestValidateNewProduct(t *testing.T) {
	tests := []struct {
		name    string
		pName   string
		price   decimal.Decimal
		stock   int
		wantErr bool
		fields  []string
	}{
		{name: "válido", pName: "Alimento para perros", price: decimal.NewFromInt(50), stock: 20},
		{name: "precio y stock cero son válidos", pName: "Muestra", price: decimal.Zero, stock: 0},
		{name: "nombre vacío", pName: "   ", price: decimal.NewFromInt(1), stock: 1, wantErr: true, fields: []string{"name"}},
		{name: "precio negativo", pName: "Collar", price: decimal.NewFromInt(-5), stock: 1, wantErr: true, fields: []string{"price"}},
		{name: "stock negativo", pName: "Collar", price: decimal.NewFromInt(5), stock: -1, wantErr: true, fields: []string{"stock"}},
		{name: "precio y stock en el máximo", pName: "Tope", price: decimal.RequireFromString("999999999999.99"), stock: catalog.MaxStock},
		{name: "precio desborda la columna", pName: "Collar", price: decimal.RequireFromString("1e20"), stock: 1, wantErr: true, fields: []string{"price"}},
		{name: "precio con tres decimales", pName: "Collar", price: decimal.RequireFromString("10.999"), stock: 1, wantErr: true, fields: []string{"price"}},
		{name: "stock supera INTEGER", pName: "Collar", price: decimal.NewFromInt(5), stock: 3000000000, wantErr: true, fields: []string{"stock"}},
		{name: "todo inválido", pName: "", price: decimal.NewFromInt(-1), stock: -1, wantErr: true, fields: []string{"name", "price", "stock"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.ValidateNewProduct(tt.pName, tt.price, tt.stock)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			for _, f := range tt.fields {
				assert.Contains(t, err.Error(), f+":")
			}
		})
	}
}

func TestValidateProductName_Longitud(t *testing.T) {
	assert.NoError(t, catalog.ValidateProductName(strings.Repeat("a", 100)))
	assert.ErrorIs(t, catalog.ValidateProductName(strings.Repeat("a", 101)), domain.ErrInvalidInput)
}

func TestValidateAdjustment(t *testing.T) {
	assert.NoError(t, catalog.ValidateAdjustment(-3, "damaged"))
	assert.NoError(t, catalog.ValidateAdjustment(10, "reposición"))

	err := catalog.ValidateAdjustment(0, "x")
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "delta", fe.Field)

	err = catalog.ValidateAdjustment(4, "  ")
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "reason", fe.Field)

	assert.NoError(t, catalog.ValidateAdjustment(catalog.MaxStock, "inventario inicial"))
	assert.NoError(t, catalog.ValidateAdjustment(-catalog.MaxStock, "baja total"))
	err = catalog.ValidateAdjustment(catalog.MaxStock+1, "x")
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "delta", fe.Field)
	assert.ErrorIs(t, catalog.ValidateAdjustment(math.MinInt, "x"), domain.ErrInvalidInput)
}

func TestValidateSaleQuantity(t *testing.T) {
	assert.NoError(t, catalog.ValidateSaleQuantity(1))
	assert.ErrorIs(t, catalog.ValidateSaleQuantity(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, catalog.ValidateSaleQuantity(-2), domain.ErrInvalidInput)
	assert.ErrorIs(t, catalog.ValidateSaleQuantity(catalog.MaxStock+1), domain.ErrInvalidInput)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Cama para perros", catalog.NormalizeName("  Cama   para\tperros "))
}
