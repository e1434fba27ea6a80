package main

import (
	"context"
	"fmt"
	"path/filepath"

	"saicollege/internal/chatbot"
	"saicollege/internal/repository"
	"saicollege/internal/service"
	"saicollege/pkg/config"
	"saicollege/pkg/postgres"

	"go.uber.org/zap"
)

type queryStore interface {
	chatbot.UnresolvedRecorder
	service.QueryLog
}

// stores are the backends selected by STORAGE_DRIVER. Everything else the
// site keeps (uploads, feedback, activity logs) always lives on disk.
type stores struct {
	knowledge service.KnowledgeStore
	queries   queryStore
	close     func()
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return &stores{
			knowledge: repository.NewKnowledgeFileRepository(dataPath(cfg, "college_data.json"), logger),
			queries:   repository.NewUnresolvedQueryFileRepository(dataPath(cfg, "unknown_queries.csv"), logger),
			close:     func() {},
		}, nil

	case config.DriverPostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &stores{
			knowledge: repository.NewKnowledgePostgresRepository(db, logger),
			queries:   repository.NewUnresolvedQueryPostgresRepository(db, logger),
			close:     db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func dataPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.Storage.DataDir, name)
}
