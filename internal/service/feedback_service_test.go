package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"saicollege/internal/models"
	"saicollege/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFeedbackService(t *testing.T) *FeedbackService {
	t.Helper()
	repo := repository.NewFeedbackFileRepository(filepath.Join(t.TempDir(), "feedback.json"), zap.NewNop())
	svc := NewFeedbackService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC) }
	return svc
}

func TestFeedbackService_Submit(t *testing.T) {
	svc := newFeedbackService(t)
	ctx := context.Background()

	fb, err := svc.Submit(ctx, "suggestion", "Add more buses", float64(4))
	require.NoError(t, err)
	assert.Equal(t, "05 Mar 2024 02:07 PM", fb.Date)
	assert.Equal(t, models.FeedbackStatusNew, fb.Status)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC).UnixMilli(), fb.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Add more buses", list[0].Message)
}

func TestFeedbackService_SubmitMissingFields(t *testing.T) {
	svc := newFeedbackService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		kind    string
		message string
		rating  any
	}{
		{"no type", "", "msg", float64(3)},
		{"blank message", "bug", "   ", float64(3)},
		{"nil rating", "bug", "msg", nil},
		{"zero rating", "bug", "msg", float64(0)},
		{"empty rating", "bug", "msg", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.kind, tc.message, tc.rating)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestFeedbackService_UpdateStatus(t *testing.T) {
	svc := newFeedbackService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "bug", "chat is slow", "5")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, 0, "read"))
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 3, "read"), ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "read", list[0].Status)
}
