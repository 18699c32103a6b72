package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/application/inventory"
	"github.com/jhoicas/Veterinaria-api/pkg/validator"
)

// InventoryHandler ajustes de stock e historial (libro de stock).
type InventoryHandler struct {
	ledger *inventory.StockLedgerUseCase
	v      validator.Validator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.StockLedgerUseCase, v validator.Validator) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, v: v}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  delta con signo: positivo entrada, negativo salida. Falla con 409 si el stock quedaría negativo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "delta y motivo"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.ledger.AdjustStock(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de stock
// @Description  Entradas del libro de stock, de la más antigua a la más reciente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.ledger.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
