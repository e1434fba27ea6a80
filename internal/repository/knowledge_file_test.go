package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"saicollege/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKnowledgeFileRepository_LoadMissingIsEmpty(t *testing.T) {
	repo := NewKnowledgeFileRepository(filepath.Join(t.TempDir(), "college_data.json"), zap.NewNop())

	kb, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.KnowledgeBase{}, kb)
}

func TestKnowledgeFileRepository_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "college_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewKnowledgeFileRepository(path, zap.NewNop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestKnowledgeFileRepository_SaveKeepsCourseOrderAndBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "college_data.json")
	repo := NewKnowledgeFileRepository(path, zap.NewNop())

	first := &models.KnowledgeBase{
		Name: "Sai College",
		UGCourses: models.CourseList{
			{Name: "BCA", Duration: "3 Years", Fee: "₹25,000/year"},
			{Name: "BA", Duration: "3 Years", Fee: "₹8,000/year"},
			{Name: "B.Com", Duration: "3 Years", Fee: "₹10,000/year"},
		},
	}
	require.NoError(t, repo.Save(ctx, first))
	_, err := os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err), "first save has nothing to back up")

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.UGCourses, 3)
	assert.Equal(t, []string{"BCA", "BA", "B.Com"}, []string{
		loaded.UGCourses[0].Name, loaded.UGCourses[1].Name, loaded.UGCourses[2].Name,
	})

	second := first.Clone()
	second.Name = "Sai Mahavidyalaya"
	require.NoError(t, repo.Save(ctx, second))

	backup, err := NewKnowledgeFileRepository(path+".bak", zap.NewNop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sai College", backup.Name)

	current, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sai Mahavidyalaya", current.Name)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestKnowledgeFileRepository_EmptyLevelSurvivesSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "college_data.json")
	repo := NewKnowledgeFileRepository(path, zap.NewNop())

	require.NoError(t, repo.Save(ctx, &models.KnowledgeBase{Name: "Sai College", DiplomaCourses: models.CourseList{}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"diploma_courses": {}`)
	assert.NotContains(t, string(raw), "ug_courses")

	kb, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, kb.DiplomaCourses)
	assert.Nil(t, kb.UGCourses)
}
