// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/repository"
)

func TestProgressService_LogAndList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewProgressService(db, repository.NewGormProgressRepository())

	first, err := svc.LogProgress(ctx, &model.LogProgressRequest{
		UserID:       1,
		ExerciseName: "Squat",
		Sets:         5,
		Reps:         5,
		Weight:       80,
		Notes:        "felt easy",
	})
	require.NoError(t, err)
	assert.Greater(t, first.ID, uint(0))
	assert.False(t, first.CompletedAt.IsZero())

	second, err := svc.LogProgress(ctx, &model.LogProgressRequest{
		UserID:       1,
		ExerciseName: "Bench Press",
		Sets:         4,
		Reps:         8,
		Weight:       60,
	})
	require.NoError(t, err)

	entries, err := svc.ListProgress(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, "Bench Press", entries[0].ExerciseName)
	assert.Equal(t, "Squat", entries[1].ExerciseName)
	assert.Equal(t, "felt easy", entries[1].Notes)
}

func TestProgressService_ListEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewProgressService(db, repository.NewGormProgressRepository())

	entries, err := svc.ListProgress(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
