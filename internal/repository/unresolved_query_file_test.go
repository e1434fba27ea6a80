package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"saicollege/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUnresolvedQueryFileRepository_RecordAndList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "unknown_queries.csv")
	repo := NewUnresolvedQueryFileRepository(path, zap.NewNop())

	at := time.Date(2024, 7, 1, 10, 30, 0, 0, time.Local)
	require.NoError(t, repo.Record(ctx, at, "weather today"))
	require.NoError(t, repo.Record(ctx, at.Add(time.Minute), "canteen menu, please"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,query,status", lines[0])
	assert.Equal(t, "2024-07-01 10:30:00,weather today,pending", lines[1])
	assert.Equal(t, `2024-07-01 10:31:00,"canteen menu, please",pending`, lines[2])

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.UnresolvedQuery{
		{Timestamp: "2024-07-01 10:31:00", Query: "canteen menu, please", Status: "pending"},
		{Timestamp: "2024-07-01 10:30:00", Query: "weather today", Status: "pending"},
	}, list)
}

func TestUnresolvedQueryFileRepository_ListMissingFile(t *testing.T) {
	repo := NewUnresolvedQueryFileRepository(filepath.Join(t.TempDir(), "none.csv"), zap.NewNop())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnresolvedQueryFileRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewUnresolvedQueryFileRepository(filepath.Join(t.TempDir(), "q.csv"), zap.NewNop())
	now := time.Now()
	require.NoError(t, repo.Record(ctx, now, "first"))
	require.NoError(t, repo.Record(ctx, now, "second"))

	// index 0 is the newest entry
	require.NoError(t, repo.UpdateStatus(ctx, 0, models.QueryStatusResolved))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", list[0].Query)
	assert.Equal(t, models.QueryStatusResolved, list[0].Status)
	assert.Equal(t, models.QueryStatusPending, list[1].Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 2, "x"), ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, -1, "x"), ErrNotFound)
}

func TestUnresolvedQueryFileRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewUnresolvedQueryFileRepository(filepath.Join(t.TempDir(), "q.csv"), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Record(ctx, time.Now(), "parallel"))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
