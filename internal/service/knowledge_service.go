package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// KnowledgeStore persists the knowledge base. Implemented by the file and
// postgres repositories.
type KnowledgeStore interface {
	Load(ctx context.Context) (*models.KnowledgeBase, error)
	Save(ctx context.Context, kb *models.KnowledgeBase) error
}

// KnowledgeService serves the current knowledge base snapshot. Readers get
// an immutable copy; an admin save swaps in a new one atomically.
type KnowledgeService struct {
	store   KnowledgeStore
	current atomic.Pointer[models.KnowledgeBase]
	logger  *zap.Logger
}

func NewKnowledgeService(store KnowledgeStore, logger *zap.Logger) *KnowledgeService {
	s := &KnowledgeService{
		store:  store,
		logger: logger,
	}
	s.current.Store(&models.KnowledgeBase{})
	return s
}

// Reload reads the store again. A failed read falls back to an empty
// knowledge base so the chatbot keeps answering with generic replies.
func (s *KnowledgeService) Reload(ctx context.Context) {
	kb, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load knowledge base, using empty one", zap.Error(err))
		kb = &models.KnowledgeBase{}
	}
	s.current.Store(kb)

	s.logger.Info("Knowledge base loaded",
		zap.String("name", kb.Name),
		zap.Int("ug_courses", len(kb.UGCourses)),
		zap.Int("pg_courses", len(kb.PGCourses)),
		zap.Int("diploma_courses", len(kb.DiplomaCourses)),
	)
}

// Snapshot returns the knowledge base in effect. Callers must not modify it.
func (s *KnowledgeService) Snapshot() *models.KnowledgeBase {
	return s.current.Load()
}

// Replace persists kb and, only when that succeeds, makes it the snapshot
// served to new requests.
func (s *KnowledgeService) Replace(ctx context.Context, kb *models.KnowledgeBase) error {
	if kb == nil {
		return fmt.Errorf("%w: empty knowledge base", ErrMissingFields)
	}
	next := kb.Clone()
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save knowledge base: %w", err)
	}
	s.current.Store(next)
	return nil
}
