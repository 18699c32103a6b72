package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/application/importer"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler importación masiva y exportación del catálogo.
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportFile godoc
// @Summary      Importar productos desde Excel
// @Description  Primera hoja; la primera fila es la cabecera (name/nombre, price/precio, stock/cantidad, category/categoria).
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ImportHandler) ImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, &requestError{Code: "MISSING_FILE", Message: "el campo file es obligatorio"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("abrir archivo subido: %w", err))
	}
	defer f.Close()

	out, err := h.uc.ImportFile(c.UserContext(), f, fh.Size)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ImportRows godoc
// @Summary      Importar productos desde filas JSON
// @Tags         import
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRowsRequest  true  "Filas columna → valor"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/import/rows [post]
func (h *ImportHandler) ImportRows(c *fiber.Ctx) error {
	var in dto.ImportRowsRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, errInvalidBody)
	}
	// sin filas es error de formato (422), lo decide el caso de uso
	out, err := h.uc.ImportFromTable(c.UserContext(), in.Rows)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo a Excel
// @Tags         import
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/products/export [get]
func (h *ImportHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.Export(c.UserContext(), &buf); err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("productos_%s.xlsx", time.Now().Format("20060102"))
	return sendFile(c, xlsxContentType, filename, buf.Bytes())
}
