package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
	"github.com/jhoicas/Veterinaria-api/internal/domain/inventory"
)

func TestNextStock(t *testing.T) {
	next, err := inventory.NextStock(15, -3)
	assert.NoError(t, err)
	assert.Equal(t, 12, next)

	next, err = inventory.NextStock(12, -12)
	assert.NoError(t, err)
	assert.Equal(t, 0, next, "vender todo el stock deja 0, no es error")

	next, err = inventory.NextStock(12, -20)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 12, next, "el stock no cambia cuando la operación falla")
}

func TestNextStock_Limites(t *testing.T) {
	next, err := inventory.NextStock(0, catalog.MaxStock)
	assert.NoError(t, err)
	assert.Equal(t, catalog.MaxStock, next)

	next, err = inventory.NextStock(10, catalog.MaxStock)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, next)

	// current + delta desbordaría int y quedaría negativo
	next, err = inventory.NextStock(10, math.MaxInt)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, next)

	next, err = inventory.NextStock(10, math.MinInt)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, next)
}
