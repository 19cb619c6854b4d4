package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/mmnete/bimasoft-backend/internal/bootstrap"
	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/mmnete/bimasoft-backend/internal/database"
	"github.com/mmnete/bimasoft-backend/internal/shared/connection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the BimaSoft database schema.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var steps int

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(env *migrateEnv) error {
				return database.MigrateUp(env.db, env.logger)
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the latest migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(env *migrateEnv) error {
				return database.MigrateDown(env.db, steps, env.logger)
			})
		},
	}
	downCmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to revert")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(env *migrateEnv) error {
				v, dirty, err := database.Version(env.db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
				return nil
			})
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type migrateEnv struct {
	db     *sql.DB
	logger *zap.Logger
}

func withDatabase(run func(env *migrateEnv) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	db, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer db.Close()

	return run(&migrateEnv{db: db, logger: logger})
}
