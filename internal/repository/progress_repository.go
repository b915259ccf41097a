//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.WorkoutProgress) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]model.WorkoutProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.WorkoutProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating progress record in DB",
			"error", result.Error,
			"user_id", progress.UserID,
			"exercise", progress.ExerciseName,
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]model.WorkoutProgress, error) {
	logger := middleware.GetLogger(ctx)
	var records []model.WorkoutProgress
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("completed_at DESC").Find(&records)
	if result.Error != nil {
		logger.Error("Error finding progress records in DB",
			"error", result.Error,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return records, nil
}
