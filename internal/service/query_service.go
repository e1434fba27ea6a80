package service

import (
	"context"
	"errors"

	"saicollege/internal/models"
	"saicollege/internal/repository"

	"go.uber.org/zap"
)

// QueryLog is the storage behind the unresolved-query triage list.
type QueryLog interface {
	List(ctx context.Context) ([]models.UnresolvedQuery, error)
	UpdateStatus(ctx context.Context, index int, status string) error
}

const recentQueriesLimit = 10

type RecentQuery struct {
	User   string `json:"user"`
	Query  string `json:"query"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type Stats struct {
	TotalQueries    int           `json:"total_queries"`
	ResolvedQueries int           `json:"resolved_queries"`
	PendingQueries  int           `json:"pending_queries"`
	RecentQueries   []RecentQuery `json:"recent_queries"`
}

type QueryService struct {
	log    QueryLog
	logger *zap.Logger
}

func NewQueryService(log QueryLog, logger *zap.Logger) *QueryService {
	return &QueryService{
		log:    log,
		logger: logger,
	}
}

// List returns unresolved queries newest first.
func (s *QueryService) List(ctx context.Context) ([]models.UnresolvedQuery, error) {
	return s.log.List(ctx)
}

// UpdateStatus changes the status of the query at index in List order.
func (s *QueryService) UpdateStatus(ctx context.Context, index int, status string) error {
	err := s.log.UpdateStatus(ctx, index, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *QueryService) Stats(ctx context.Context) (*Stats, error) {
	queries, err := s.log.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalQueries:  len(queries),
		RecentQueries: []RecentQuery{},
	}
	for _, q := range queries {
		if q.Status == models.QueryStatusResolved {
			stats.ResolvedQueries++
		}
	}
	stats.PendingQueries = stats.TotalQueries - stats.ResolvedQueries

	for i, q := range queries {
		if i == recentQueriesLimit {
			break
		}
		status := q.Status
		if status == "" {
			status = "Pending"
		}
		stats.RecentQueries = append(stats.RecentQueries, RecentQuery{
			User:   "Anonymous",
			Query:  q.Query,
			Time:   q.Timestamp,
			Status: status,
		})
	}
	return stats, nil
}
