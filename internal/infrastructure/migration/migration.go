// Package migration manages the database schema. Versioned SQL migrations
// are embedded into the binary and applied with goose; AutoMigrateModels is
// the fallback for development databases.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"workbase/internal/shared/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Up applies every pending migration.
func Up(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
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
func Down(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	logger.Info("database migration rolled back")
	return nil
}

// Status prints the applied/pending state of each migration.
func Status(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return goose.Status(sqlDB, "migrations")
}

// AutoMigrate creates or updates tables from the model definitions. Intended
// for development only; production schemas go through versioned migrations.
func AutoMigrate(database *gorm.DB) error {
	if err := database.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	logger.Info("auto-migration completed")
	return nil
}
