package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"saicollege/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const knowledgeTable = "knowledge_base_versions"

// KnowledgePostgresRepository stores every saved knowledge base as a new
// row; the older versions act as backups. The version column is a sequence,
// so concurrent saves never collide.
type KnowledgePostgresRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgePostgresRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgePostgresRepository {
	return &KnowledgePostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KnowledgePostgresRepository) Load(ctx context.Context) (*models.KnowledgeBase, error) {
	sql, args, err := latestKnowledgeQuery().ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.KnowledgeBase{}, nil
	}
	if err != nil {
		return nil, err
	}

	kb := &models.KnowledgeBase{}
	if err := json.Unmarshal(data, kb); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, knowledgeTable, err)
	}
	return kb, nil
}

func (r *KnowledgePostgresRepository) Save(ctx context.Context, kb *models.KnowledgeBase) error {
	query, err := insertKnowledgeQuery(uuid.New(), kb)
	if err != nil {
		return err
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func latestKnowledgeQuery() squirrel.SelectBuilder {
	return squirrel.Select("data").
		From(knowledgeTable).
		OrderBy("version DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

// insertKnowledgeQuery passes the document as text so the json column keeps
// it exactly as marshalled.
func insertKnowledgeQuery(id uuid.UUID, kb *models.KnowledgeBase) (squirrel.InsertBuilder, error) {
	data, err := json.Marshal(kb)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}

	return squirrel.Insert(knowledgeTable).
		Columns("id", "data", "created_at").
		Values(id, string(data), squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar), nil
}
