package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Veterinaria-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica las migraciones SQL embebidas con goose.
type Migrator struct {
	provider *goose.Provider
	close    func() error
	log      *logger.Logger
}

// NewMigrator abre un *sql.DB sobre el pool (goose trabaja con database/sql).
func NewMigrator(pool *pgxpool.Pool, log *logger.Logger) (*Migrator, error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return &Migrator{provider: provider, close: db.Close, log: log}, nil
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.log.Info().Int64("version", r.Source.Version).Dur("duracion", r.Duration).Msg("migración aplicada")
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down revierte la última migración aplicada.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	if r != nil {
		m.log.Info().Int64("version", r.Source.Version).Msg("migración revertida")
	}
	return nil
}

// Status registra el estado de cada migración.
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	for _, s := range statuses {
		m.log.Info().Int64("version", s.Source.Version).Str("estado", string(s.State)).Msg("migración")
	}
	return nil
}

// Close libera el *sql.DB (el pool sigue abierto).
func (m *Migrator) Close() error { return m.close() }

// Migrate aplica las migraciones pendientes; atajo usado en el arranque del API.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	m, err := NewMigrator(pool, log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
