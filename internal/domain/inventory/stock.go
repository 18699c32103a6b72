// Package inventory contiene la regla central del libro de stock.
package inventory

import (
	"fmt"

	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/domain/catalog"
)

// NextStock aplica delta al stock actual (0 <= current <= catalog.MaxStock).
// Devuelve ErrInsufficientStock si el resultado sería negativo y un FieldError si
// superaría catalog.MaxStock; en ambos casos el stock no debe modificarse.
// Las comparaciones se hacen sin calcular current + delta, que podría desbordar.
func NextStock(current, delta int) (int, error) {
	if delta < -current {
		return current, domain.ErrInsufficientStock
	}
	if delta > catalog.MaxStock-current {
		return current, domain.NewFieldError("delta", fmt.Sprintf("el stock resultante superaría %d", catalog.MaxStock))
	}
	return current + delta, nil
}
