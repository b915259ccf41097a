//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
// internal/service/auth_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/repository"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6

	// Same message for unknown user and wrong password.
	msgLoginFailed = "Invalid username or password."
)

type AuthService interface {
	Register(ctx context.Context, req *model.AuthRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.AuthRequest) (*model.AuthResponse, error)
}

type authService struct {
	db    *gorm.DB
	users repository.UserRepository
}

func NewAuthService(db *gorm.DB, users repository.UserRepository) AuthService {
	return &authService{
		db:    db,
		users: users,
	}
}

// Register validates the credentials and stores the account. Rule
// violations are a normal response with Success=false, not an error;
// the error return is reserved for storage failures.
func (s *authService) Register(ctx context.Context, req *model.AuthRequest) (*model.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return fail("Username and password are required."), nil
	}
	if len(req.Username) < minUsernameLen {
		return fail("Username must be at least 3 characters long."), nil
	}
	if len(req.Password) < minPasswordLen {
		return fail("Password must be at least 6 characters long."), nil
	}

	logger := middleware.GetLogger(ctx)

	var created *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.users.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			return model.ErrConflict
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking username existence", "error", err)
			return model.ErrInternalServer
		}

		user := &model.User{
			Username: req.Username,
			Password: req.Password,
		}
		if err := s.users.Create(ctx, tx, user); err != nil {
			logger.Error("Error creating user in transaction", "error", err)
			return model.ErrInternalServer
		}
		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return fail("Username is already taken."), nil
		}
		return nil, model.ErrInternalServer
	}

	return &model.AuthResponse{
		Success:  true,
		Message:  "User registered successfully.",
		Username: created.Username,
		UserID:   created.ID,
	}, nil
}

// Login looks up an exact username+password match.
func (s *authService) Login(ctx context.Context, req *model.AuthRequest) (*model.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return fail("Username and password are required."), nil
	}

	user, err := s.users.FindByCredentials(ctx, s.db, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fail(msgLoginFailed), nil
		}
		middleware.GetLogger(ctx).Error("Error looking up credentials", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.AuthResponse{
		Success:  true,
		Message:  "Login successful.",
		Username: user.Username,
		UserID:   user.ID,
	}, nil
}

func fail(message string) *model.AuthResponse {
	return &model.AuthResponse{Success: false, Message: message}
}
