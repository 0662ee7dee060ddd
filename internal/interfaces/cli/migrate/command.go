package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbase/internal/infrastructure/config"
	"workbase/internal/infrastructure/database"
	"workbase/internal/infrastructure/migration"
	"workbase/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, rolling back, and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()
			return migration.Up(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Rollback the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()
			return migration.Down(database.Get())
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()
			return migration.Status(database.Get())
		},
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Run gorm auto-migration (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if env == "production" {
				return fmt.Errorf("auto-migration is not allowed in production")
			}
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()
			return migration.AutoMigrate(database.Get())
		},
	}
}

func initEnv() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
