//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
	FindByCredentials(ctx context.Context, db *gorm.DB, username, password string) (*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(user)
	if result.Error != nil {
		logger.Error("Error creating user in DB",
			"error", result.Error,
			"username", user.Username,
		)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by username in DB",
			"error", result.Error,
			"username", username,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByCredentials(ctx context.Context, db *gorm.DB, username, password string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	// Exact string match on both fields; passwords are stored as-is.
	result := db.WithContext(ctx).Where("username = ? AND password = ?", username, password).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by credentials in DB",
			"error", result.Error,
			"username", username,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByCredentials: %w", result.Error)
	}
	return &user, nil
}
