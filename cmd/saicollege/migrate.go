package main

import (
	"saicollege/internal/repository"
	"saicollege/pkg/logger"

	"github.com/spf13/cobra"
)

func migrateCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, appLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := repository.RunMigrations(cfg.Database.URL()); err != nil {
				return err
			}
			appLogger.Info("Migrations applied")
			return nil
		},
	}
}
