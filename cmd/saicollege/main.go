package main

import (
	"fmt"
	"os"

	"saicollege/pkg/config"
	"saicollege/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Sai College API
// @version 1.0
// @description College website backend with a rule-based admissions chatbot.

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.

func main() {
	root := &cobra.Command{
		Use:           "saicollege",
		Short:         "Sai College website and chatbot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe("")
		},
	}

	root.AddCommand(serveCMD(), migrateCMD(), seedCMD(), askCMD(), hashPasswordCMD())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initializes the global logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	return cfg, logger.Get(), nil
}
