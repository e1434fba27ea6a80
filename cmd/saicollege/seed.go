package main

import (
	"fmt"
	"os"

	"saicollege/internal/repository"
	"saicollege/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <college_data.json>",
		Short: "Import a knowledge base JSON file into the configured store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, appLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("seed file: %w", err)
			}

			kb, err := repository.NewKnowledgeFileRepository(args[0], appLogger).Load(cmd.Context())
			if err != nil {
				return err
			}

			st, err := openStores(cmd.Context(), cfg, appLogger)
			if err != nil {
				return err
			}
			defer st.close()

			if err := st.knowledge.Save(cmd.Context(), kb); err != nil {
				return fmt.Errorf("save knowledge base: %w", err)
			}

			appLogger.Info("Knowledge base seeded",
				zap.String("source", args[0]),
				zap.Int("courses", len(kb.UGCourses)+len(kb.PGCourses)+len(kb.DiplomaCourses)),
			)
			return nil
		},
	}
}
