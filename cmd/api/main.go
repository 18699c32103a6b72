package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Veterinaria-api/docs"
	"github.com/jhoicas/Veterinaria-api/internal/application/auth"
	"github.com/jhoicas/Veterinaria-api/internal/application/importer"
	"github.com/jhoicas/Veterinaria-api/internal/application/inventory"
	"github.com/jhoicas/Veterinaria-api/internal/application/reporting"
	"github.com/jhoicas/Veterinaria-api/internal/application/setup"
	"github.com/jhoicas/Veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/excel"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Veterinaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Veterinaria-api/internal/interfaces/http"
	"github.com/jhoicas/Veterinaria-api/pkg/config"
	"github.com/jhoicas/Veterinaria-api/pkg/logger"
	"github.com/jhoicas/Veterinaria-api/pkg/validator"
)

// @title                       Veterinaria API
// @version                     1.0
// @description                 Inventario, libro de stock y ventas de la tienda veterinaria.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	archiveRepo := postgres.NewDeletedProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	appMetrics := metrics.New()

	productUC := usecase.NewProductUseCase(txRunner, productRepo, archiveRepo, cfg.Inventory.LowStockThreshold)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	ledgerUC := inventory.NewStockLedgerUseCase(txRunner, productRepo, movementRepo, appMetrics)
	salesUC := inventory.NewSalesUseCase(txRunner, saleRepo, appMetrics)

	codec := excel.NewCodec()
	importUC := importer.NewUseCase(productUC, categoryUC, productRepo, categoryRepo, codec, codec, appMetrics)

	reportUC := reporting.NewUseCase(reportRepo, productUC, salesUC)
	pdfUC := reporting.NewPDFUseCase(reportUC, salesUC, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	bootstrapper := setup.NewBootstrapper(authUC, categoryUC, productUC, setup.Admin{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, log.Component("setup"))
	if _, err := bootstrapper.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(httpRouter.Metrics(appMetrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Veterinaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		LedgerUC:   ledgerUC,
		SalesUC:    salesUC,
		ImportUC:   importUC,
		ReportUC:   reportUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		Validator:  validator.MustNew(),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
