package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Veterinaria-api/internal/application/auth"
	"github.com/jhoicas/Veterinaria-api/internal/application/importer"
	"github.com/jhoicas/Veterinaria-api/internal/application/inventory"
	"github.com/jhoicas/Veterinaria-api/internal/application/reporting"
	"github.com/jhoicas/Veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	LedgerUC   *inventory.StockLedgerUseCase
	SalesUC    *inventory.SalesUseCase
	ImportUC   *importer.UseCase
	ReportUC   *reporting.UseCase
	PDFUC      *reporting.PDFUseCase
	AuthUC     *auth.AuthUseCase
	Validator  validator.Validator
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validator.MustNew()
	}

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, v)
	productHandler := NewProductHandler(deps.ProductUC, v)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, v)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, v)
	saleHandler := NewSaleHandler(deps.SalesUC, deps.PDFUC, v)
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFUC)
	importHandler := NewImportHandler(deps.ImportUC)

	// Públicas: login y catálogo
	api.Post("/auth/login", authHandler.Login)
	api.Get("/products", productHandler.List)

	// Resto: Bearer Token con rol admin
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	protected.Get("/auth/me", authHandler.Me)

	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/deleted", productHandler.ListDeleted)
	products.Get("/export", importHandler.Export)
	products.Post("/import", importHandler.ImportFile)
	products.Post("/import/rows", importHandler.ImportRows)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjustments", inventoryHandler.Adjust)
	products.Get("/:id/history", inventoryHandler.History)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	sales := protected.Group("/sales")
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	reports := protected.Group("/reports")
	reports.Get("/sales-by-product", reportHandler.SalesByProduct)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/sales.pdf", reportHandler.SalesPDF)
	reports.Get("/low-stock.pdf", reportHandler.LowStockPDF)
}
