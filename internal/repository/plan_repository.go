//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
)

type PlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *model.WorkoutPlan) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]model.WorkoutPlan, error)
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

// Create inserts the plan together with its Exercises association.
func (r *gormPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.WorkoutPlan) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(plan)
	if result.Error != nil {
		logger.Error("Error creating workout plan in DB",
			"error", result.Error,
			"user_id", plan.UserID,
			"day_number", plan.DayNumber,
		)
		return fmt.Errorf("gormPlanRepository.Create: %w", result.Error)
	}
	return nil
}

// DeleteByUser removes every plan owned by the user. Exercises are
// deleted explicitly first rather than relying on database-level
// cascade, so the behavior is identical on postgres and sqlite.
func (r *gormPlanRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error {
	logger := middleware.GetLogger(ctx)
	planIDs := tx.Model(&model.WorkoutPlan{}).Select("id").Where("user_id = ?", userID)
	if err := tx.WithContext(ctx).Where("workout_plan_id IN (?)", planIDs).Delete(&model.Exercise{}).Error; err != nil {
		logger.Error("Error deleting exercises in DB",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("gormPlanRepository.DeleteByUser: %w", err)
	}
	if err := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.WorkoutPlan{}).Error; err != nil {
		logger.Error("Error deleting workout plans in DB",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("gormPlanRepository.DeleteByUser: %w", err)
	}
	return nil
}

// FindByUser returns the user's plans ordered by day number, each with
// its exercises ordered by order index. An empty result is not an
// error.
func (r *gormPlanRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]model.WorkoutPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plans []model.WorkoutPlan
	result := db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("user_id = ?", userID).
		Order("day_number ASC").
		Find(&plans)
	if result.Error != nil {
		logger.Error("Error finding workout plans in DB",
			"error", result.Error,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByUser: %w", result.Error)
	}
	return plans, nil
}
