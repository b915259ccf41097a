//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
// internal/service/progress_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/repository"
)

type ProgressService interface {
	LogProgress(ctx context.Context, req *model.LogProgressRequest) (*model.ProgressEntry, error)
	ListProgress(ctx context.Context, userID uint) ([]model.ProgressEntry, error)
}

type progressService struct {
	db       *gorm.DB
	progress repository.ProgressRepository
}

func NewProgressService(db *gorm.DB, progress repository.ProgressRepository) ProgressService {
	return &progressService{
		db:       db,
		progress: progress,
	}
}

func (s *progressService) LogProgress(ctx context.Context, req *model.LogProgressRequest) (*model.ProgressEntry, error) {
	record := &model.WorkoutProgress{
		UserID:       req.UserID,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Notes:        req.Notes,
		CompletedAt:  time.Now(),
	}
	if err := s.progress.Create(ctx, s.db, record); err != nil {
		middleware.GetLogger(ctx).Error("Error storing progress record", "error", err)
		return nil, model.ErrInternalServer
	}
	return toProgressEntry(record), nil
}

func (s *progressService) ListProgress(ctx context.Context, userID uint) ([]model.ProgressEntry, error) {
	records, err := s.progress.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing progress records", "error", err)
		return nil, model.ErrInternalServer
	}
	entries := make([]model.ProgressEntry, 0, len(records))
	for i := range records {
		entries = append(entries, *toProgressEntry(&records[i]))
	}
	return entries, nil
}

func toProgressEntry(r *model.WorkoutProgress) *model.ProgressEntry {
	return &model.ProgressEntry{
		ID:           r.ID,
		ExerciseName: r.ExerciseName,
		Sets:         r.Sets,
		Reps:         r.Reps,
		Weight:       r.Weight,
		Notes:        r.Notes,
		CompletedAt:  r.CompletedAt,
	}
}
