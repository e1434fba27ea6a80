package repository

import (
	"context"
	"time"

	"saicollege/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const unresolvedTable = "unresolved_queries"

type UnresolvedQueryPostgresRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUnresolvedQueryPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) *UnresolvedQueryPostgresRepository {
	return &UnresolvedQueryPostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UnresolvedQueryPostgresRepository) Record(ctx context.Context, at time.Time, query string) error {
	sql, args, err := recordQueryInsert(at, query).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UnresolvedQueryPostgresRepository) List(ctx context.Context) ([]models.UnresolvedQuery, error) {
	sql, args, err := listQueriesSelect().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queries := []models.UnresolvedQuery{}
	for rows.Next() {
		var (
			at    time.Time
			entry models.UnresolvedQuery
		)
		if err := rows.Scan(&at, &entry.Query, &entry.Status); err != nil {
			return nil, err
		}
		entry.Timestamp = at.Format(models.TimestampLayout)
		queries = append(queries, entry)
	}

	return queries, rows.Err()
}

// UpdateStatus changes the status of the entry at index in List order.
func (r *UnresolvedQueryPostgresRepository) UpdateStatus(ctx context.Context, index int, status string) error {
	if index < 0 {
		return ErrNotFound
	}

	sql, args, err := queryStatusUpdate(index, status).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func recordQueryInsert(at time.Time, query string) squirrel.InsertBuilder {
	return squirrel.Insert(unresolvedTable).
		Columns("created_at", "query", "status").
		Values(at, query, models.QueryStatusPending).
		PlaceholderFormat(squirrel.Dollar)
}

// listQueriesSelect returns the newest entry first, like the CSV store.
func listQueriesSelect() squirrel.SelectBuilder {
	return squirrel.Select("created_at", "query", "status").
		From(unresolvedTable).
		OrderBy("id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

// queryStatusUpdate addresses the row by its position in listQueriesSelect.
func queryStatusUpdate(index int, status string) squirrel.UpdateBuilder {
	return squirrel.Update(unresolvedTable).
		Set("status", status).
		Where(squirrel.Expr("id = (SELECT id FROM "+unresolvedTable+" ORDER BY id DESC LIMIT 1 OFFSET ?)", index)).
		PlaceholderFormat(squirrel.Dollar)
}
