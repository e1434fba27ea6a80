package repository

import (
	"context"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

type KnowledgeFileRepository struct {
	file   jsonFile
	logger *zap.Logger
}

func NewKnowledgeFileRepository(path string, logger *zap.Logger) *KnowledgeFileRepository {
	return &KnowledgeFileRepository{
		file:   jsonFile{path: path, logger: logger},
		logger: logger,
	}
}

// Load returns an empty knowledge base when the file does not exist yet.
// A file that cannot be decoded yields ErrCorrupt.
func (r *KnowledgeFileRepository) Load(ctx context.Context) (*models.KnowledgeBase, error) {
	kb := &models.KnowledgeBase{}
	if _, err := r.file.read(kb); err != nil {
		return nil, err
	}
	return kb, nil
}

func (r *KnowledgeFileRepository) Save(ctx context.Context, kb *models.KnowledgeBase) error {
	if err := r.file.write(kb); err != nil {
		return err
	}
	r.logger.Info("Knowledge base saved", zap.String("path", r.file.path))
	return nil
}
