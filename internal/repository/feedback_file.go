package repository

import (
	"context"
	"sync"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// FeedbackFileRepository keeps feedback in a JSON array, newest first.
type FeedbackFileRepository struct {
	file jsonFile
	mu   sync.Mutex
}

func NewFeedbackFileRepository(path string, logger *zap.Logger) *FeedbackFileRepository {
	return &FeedbackFileRepository{file: jsonFile{path: path, logger: logger}}
}

func (r *FeedbackFileRepository) Add(ctx context.Context, fb models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	list = append([]models.Feedback{fb}, list...)
	return r.file.write(list)
}

func (r *FeedbackFileRepository) List(ctx context.Context) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FeedbackFileRepository) UpdateStatus(ctx context.Context, index int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return ErrNotFound
	}
	list[index].Status = status
	return r.file.write(list)
}

func (r *FeedbackFileRepository) load() ([]models.Feedback, error) {
	list := []models.Feedback{}
	if _, err := r.file.read(&list); err != nil {
		return nil, err
	}
	return list, nil
}
