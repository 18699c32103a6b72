// Command migrate aplica las migraciones de la base y carga los datos iniciales.
//
//	migrate [up|down|status|seed]
//
// "up" (por defecto) migra y luego ejecuta el bootstrap (admin, categorías y catálogo inicial).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Veterinaria-api/internal/application/auth"
	"github.com/jhoicas/Veterinaria-api/internal/application/setup"
	"github.com/jhoicas/Veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Veterinaria-api/pkg/config"
	"github.com/jhoicas/Veterinaria-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, log.Component("migrate"))
	if err != nil {
		return err
	}
	defer migrator.Close()

	switch cmd {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			return err
		}
		return seed(ctx, cfg, log, pool)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	case "seed":
		return seed(ctx, cfg, log, pool)
	default:
		return fmt.Errorf("comando desconocido %q (up, down, status, seed)", cmd)
	}
}

func seed(ctx context.Context, cfg *config.Config, log *logger.Logger, pool *pgxpool.Pool) error {
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	products := usecase.NewProductUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewProductRepository(pool),
		postgres.NewDeletedProductRepository(pool),
		cfg.Inventory.LowStockThreshold,
	)
	categories := usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool))

	res, err := setup.NewBootstrapper(authUC, categories, products, setup.Admin{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, log.Component("setup")).Bootstrap(ctx)
	if err != nil {
		return err
	}
	log.Info().Bool("admin_creado", res.AdminCreated).Int("productos_creados", res.ProductsCreated).Msg("datos iniciales listos")
	return nil
}
