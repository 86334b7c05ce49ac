// Package migration applies embedded SQL schema migrations with goose.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/shared/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Up applies all pending migrations.
func Up(conn *database.Connection) error {
	sqlDB, err := conn.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("database migrations applied")
	return nil
}

// Down rolls back the most recent migration.
func Down(conn *database.Connection) error {
	sqlDB, err := conn.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	logger.Info("database migration rolled back")
	return nil
}

// Status logs the applied/pending state of every known migration.
func Status(conn *database.Connection) error {
	sqlDB, err := conn.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Status(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to report migration status: %w", err)
	}
	return nil
}
