package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
)

func TestCategory_CreateDuplicada(t *testing.T) {
	_, uc, _ := newCatalog(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "alimentos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategory_EnsureCategory(t *testing.T) {
	_, uc, _ := newCatalog(t)
	ctx := context.Background()

	first, err := uc.EnsureCategory(ctx, "Higiene")
	require.NoError(t, err)
	again, err := uc.EnsureCategory(ctx, "HIGIENE")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategory_ListOrdenada(t *testing.T) {
	_, uc, _ := newCatalog(t)
	ctx := context.Background()
	for _, n := range []string{"Juguetes", "Alimentos", "Camas"} {
		_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: n})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alimentos", list[0].Name)
	assert.Equal(t, "Juguetes", list[2].Name)
}
