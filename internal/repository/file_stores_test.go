package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"saicollege/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeedbackFileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedbackFileRepository(filepath.Join(t.TempDir(), "feedback.json"), zap.NewNop())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Add(ctx, models.Feedback{ID: 1, Message: "old", Status: models.FeedbackStatusNew}))
	require.NoError(t, repo.Add(ctx, models.Feedback{ID: 2, Message: "new", Status: models.FeedbackStatusNew}))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, 1, "read"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "read", list[1].Status)
	assert.Equal(t, models.FeedbackStatusNew, list[0].Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 5, "read"), ErrNotFound)
}

func TestSyllabusFileRepository_UpsertReplacesDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewSyllabusFileRepository(filepath.Join(t.TempDir(), "syllabus_metadata.json"), zap.NewNop())

	require.NoError(t, repo.Upsert(ctx, models.SyllabusFile{Filename: "bca_sem1.pdf", Semester: "1"}))
	require.NoError(t, repo.Upsert(ctx, models.SyllabusFile{Filename: "ba_sem2.pdf", Semester: "2"}))
	require.NoError(t, repo.Upsert(ctx, models.SyllabusFile{Filename: "bca_sem1.pdf", Semester: "3"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ba_sem2.pdf", list[0].Filename)
	assert.Equal(t, "3", list[1].Semester)

	require.NoError(t, repo.Delete(ctx, "ba_sem2.pdf"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSyllabusFileRepository_CorruptIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syllabus_metadata.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

	list, err := NewSyllabusFileRepository(path, zap.NewNop()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGalleryFileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryFileRepository(filepath.Join(t.TempDir(), "gallery_metadata.json"), zap.NewNop())

	require.NoError(t, repo.Add(ctx, models.GalleryImage{Filename: "img_1_gate.jpg", Category: "campus"}))
	require.NoError(t, repo.Add(ctx, models.GalleryImage{Filename: "img_2_fest.jpg", Category: "events"}))
	require.NoError(t, repo.Delete(ctx, "img_1_gate.jpg"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryImage{{Filename: "img_2_fest.jpg", Category: "events"}}, list)
}

func TestAdminFileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminFileRepository(filepath.Join(t.TempDir(), "admin_config.json"), zap.NewNop())

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	account := &models.AdminAccount{Username: "Admin", Password: "hash", SecretCode: "code"}
	require.NoError(t, repo.Save(ctx, account))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestChatAndActivityLogs(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	chat := NewChatLogRepository(filepath.Join(dir, "chat_logs.csv"))
	require.NoError(t, chat.Append(ctx, at, "bca fee", "BCA...", "curl/8"))

	activity := NewActivityLogRepository(filepath.Join(dir, "admin_activity_logs.csv"))
	require.NoError(t, activity.Append(ctx, at, "10.0.0.1", "LOGIN", "FAILED"))

	records, err := chat.log.Records()
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{
		"timestamp":    "2024-01-02 03:04:05",
		"user_message": "bca fee",
		"bot_response": "BCA...",
		"user_agent":   "curl/8",
	}}, records)

	records, err = activity.log.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LOGIN", records[0]["action"])
}
