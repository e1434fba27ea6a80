package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"saicollege/internal/models"
	"saicollege/internal/repository"

	"go.uber.org/zap"
)

const feedbackDateLayout = "02 Jan 2006 03:04 PM"

type FeedbackService struct {
	repo   *repository.FeedbackFileRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewFeedbackService(repo *repository.FeedbackFileRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// Submit stores a new feedback entry at the top of the list. Type, message
// and rating are all required; a rating of 0 or "" counts as missing.
func (s *FeedbackService) Submit(ctx context.Context, kind, message string, rating any) (*models.Feedback, error) {
	kind = strings.TrimSpace(kind)
	message = strings.TrimSpace(message)
	if kind == "" || message == "" || emptyRating(rating) {
		return nil, ErrMissingFields
	}

	now := s.now()
	fb := models.Feedback{
		ID:      now.UnixMilli(),
		Date:    now.Format(feedbackDateLayout),
		Type:    sanitizeUTF8(kind),
		Message: sanitizeUTF8(message),
		Rating:  rating,
		Status:  models.FeedbackStatusNew,
	}
	if err := s.repo.Add(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info("Feedback received", zap.Int64("id", fb.ID), zap.String("type", fb.Type))
	return &fb, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *FeedbackService) UpdateStatus(ctx context.Context, index int, status string) error {
	err := s.repo.UpdateStatus(ctx, index, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func emptyRating(rating any) bool {
	switch v := rating.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case bool:
		return !v
	}
	return false
}
