package repository

import (
	"context"
	"time"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// UnresolvedQueryFileRepository keeps unresolved queries in a CSV file
// with the columns timestamp, query, status.
type UnresolvedQueryFileRepository struct {
	log    *CSVLog
	logger *zap.Logger
}

func NewUnresolvedQueryFileRepository(path string, logger *zap.Logger) *UnresolvedQueryFileRepository {
	return &UnresolvedQueryFileRepository{
		log:    NewCSVLog(path, "timestamp", "query", "status"),
		logger: logger,
	}
}

func (r *UnresolvedQueryFileRepository) Record(ctx context.Context, at time.Time, query string) error {
	return r.log.Append([]string{
		at.Format(models.TimestampLayout),
		query,
		models.QueryStatusPending,
	})
}

// List returns the stored queries newest first.
func (r *UnresolvedQueryFileRepository) List(ctx context.Context) ([]models.UnresolvedQuery, error) {
	records, err := r.log.Records()
	if err != nil {
		return nil, err
	}

	out := make([]models.UnresolvedQuery, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, models.UnresolvedQuery{
			Timestamp: records[i]["timestamp"],
			Query:     records[i]["query"],
			Status:    records[i]["status"],
		})
	}
	return out, nil
}

// UpdateStatus changes the status of the entry at index in List order.
func (r *UnresolvedQueryFileRepository) UpdateStatus(ctx context.Context, index int, status string) error {
	return r.log.Update(func(records []map[string]string) error {
		if index < 0 || index >= len(records) {
			return ErrNotFound
		}
		records[len(records)-1-index]["status"] = status
		return nil
	})
}
