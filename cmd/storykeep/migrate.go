package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/totegamma/storykeep/internal/config"
	"github.com/totegamma/storykeep/internal/infra/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return err
		}

		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			return errors.Wrap(err, "failed to connect database")
		}

		if err := database.Migrate(db); err != nil {
			return errors.Wrap(err, "failed to migrate database")
		}
		slog.Info("migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
