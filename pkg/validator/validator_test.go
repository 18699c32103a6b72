package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productInput struct {
	Name  string          `json:"name" validate:"notblank,max=10"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
	Stock int             `json:"stock" validate:"gte=0"`
}

func TestValidate_OK(t *testing.T) {
	v := MustNew()
	err := v.Validate(productInput{Name: "Collar", Price: decimal.NewFromInt(35), Stock: 8})
	assert.NoError(t, err)
}

func TestValidate_FieldMessages(t *testing.T) {
	v := MustNew()
	err := v.Validate(productInput{Name: "   ", Price: decimal.NewFromInt(-5), Stock: -1})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := FieldMessages(err)
	assert.Equal(t, "no puede estar vacío", fields["name"])
	assert.Equal(t, "debe ser mayor o igual a 0", fields["price"])
	assert.Equal(t, "debe ser mayor o igual a 0", fields["stock"])
}

func TestValidate_CotasSuperiores(t *testing.T) {
	type bounded struct {
		Price decimal.Decimal `json:"price" validate:"lt=1000000000000"`
		Stock int             `json:"stock" validate:"lte=2147483647"`
	}
	v := MustNew()
	assert.NoError(t, v.Validate(bounded{Price: decimal.RequireFromString("999999999999.99"), Stock: 2147483647}))

	err := v.Validate(bounded{Price: decimal.RequireFromString("1e20"), Stock: 3000000000})
	require.Error(t, err)
	fields := FieldMessages(err)
	assert.Equal(t, "debe ser menor que 1000000000000", fields["price"])
	assert.Equal(t, "debe ser menor o igual a 2147483647", fields["stock"])
}

func TestFieldMessages_ErrorNoValidacion(t *testing.T) {
	assert.Nil(t, FieldMessages(assert.AnError))
	assert.False(t, IsValidationError(assert.AnError))
}
