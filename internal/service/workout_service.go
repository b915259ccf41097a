//go:generate mockery --name WorkoutService --output ./mocks --outpkg mocks --case=underscore
// internal/service/workout_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/ai"
	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/repository"
)

type WorkoutService interface {
	GeneratePlans(ctx context.Context, req *model.GeneratePlanRequest) ([]model.PlanPayload, error)
	GetPlans(ctx context.Context, userID uint) ([]model.PlanPayload, error)
	ReplaceExercise(ctx context.Context, exerciseName string) (string, error)
}

type workoutService struct {
	db        *gorm.DB
	plans     repository.PlanRepository
	completer ai.Completer
}

func NewWorkoutService(db *gorm.DB, plans repository.PlanRepository, completer ai.Completer) WorkoutService {
	return &workoutService{
		db:        db,
		plans:     plans,
		completer: completer,
	}
}

// GeneratePlans runs the full generation pipeline: prompt, completion,
// sanitize, parse, then a transactional replace of the user's plan set.
// Nothing is written unless the parse yields at least one workout.
func (s *workoutService) GeneratePlans(ctx context.Context, req *model.GeneratePlanRequest) ([]model.PlanPayload, error) {
	logger := middleware.GetLogger(ctx).With(
		"generation_id", uuid.NewString(),
		"user_id", req.UserID,
	)

	raw, err := s.completer.Complete(ctx, ai.PlanPrompt(req))
	if err != nil {
		logger.Warn("AI completion failed", "error", err)
		return nil, err
	}

	text := ai.Sanitize(raw)

	var payloads []model.PlanPayload
	if err := json.Unmarshal([]byte(text), &payloads); err != nil {
		logger.Warn("AI response was not valid JSON", "error", err)
		return nil, fmt.Errorf("%w: %v", model.ErrBadGeneration, err)
	}
	if len(payloads) == 0 {
		// An empty array is a failed generation, not a plan.
		logger.Warn("AI response parsed to zero workouts")
		return nil, model.ErrBadGeneration
	}

	normalizePayloads(payloads)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.plans.DeleteByUser(ctx, tx, req.UserID); err != nil {
			return err
		}
		for i, p := range payloads {
			plan := &model.WorkoutPlan{
				UserID:    req.UserID,
				Name:      p.Name,
				DayNumber: i + 1,
			}
			for j, ex := range p.Excercises {
				plan.Exercises = append(plan.Exercises, model.Exercise{
					Name:       ex.Name,
					Sets:       ex.Sets,
					Reps:       ex.Reps,
					RestTime:   ex.RestTime,
					VideoLink:  ex.VideoLink,
					OrderIndex: j,
				})
			}
			if err := s.plans.Create(ctx, tx, plan); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for GeneratePlans", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Workout plans replaced", "plan_count", len(payloads))
	return payloads, nil
}

// normalizePayloads fills the defaults the contract guarantees: plan
// name "Day {n}", exercise name "Unknown Exercise", and the exercise
// name as videoLink fallback.
func normalizePayloads(payloads []model.PlanPayload) {
	for i := range payloads {
		if payloads[i].Name == "" {
			payloads[i].Name = fmt.Sprintf("Day %d", i+1)
		}
		if payloads[i].Excercises == nil {
			payloads[i].Excercises = []model.ExercisePayload{}
		}
		for j := range payloads[i].Excercises {
			ex := &payloads[i].Excercises[j]
			if ex.Name == "" {
				ex.Name = "Unknown Exercise"
			}
			if ex.VideoLink == "" {
				ex.VideoLink = ex.Name
			}
		}
	}
}

// GetPlans returns the user's stored plans in the wire shape, ordered
// by day number with exercises ordered by order index. No plans is an
// empty array, not an error.
func (s *workoutService) GetPlans(ctx context.Context, userID uint) ([]model.PlanPayload, error) {
	plans, err := s.plans.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing workout plans", "error", err)
		return nil, model.ErrInternalServer
	}

	payloads := make([]model.PlanPayload, 0, len(plans))
	for _, p := range plans {
		payload := model.PlanPayload{
			Name:       p.Name,
			Excercises: make([]model.ExercisePayload, 0, len(p.Exercises)),
		}
		for _, ex := range p.Exercises {
			payload.Excercises = append(payload.Excercises, model.ExercisePayload{
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				RestTime:  ex.RestTime,
				VideoLink: ex.VideoLink,
			})
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}

// ReplaceExercise asks the AI for a single substitute and returns the
// sanitized text verbatim. Nothing is parsed or persisted.
func (s *workoutService) ReplaceExercise(ctx context.Context, exerciseName string) (string, error) {
	raw, err := s.completer.Complete(ctx, ai.ReplacementPrompt(exerciseName))
	if err != nil {
		middleware.GetLogger(ctx).Warn("AI completion failed for replacement", "error", err, "exercise", exerciseName)
		return "", err
	}
	return ai.Sanitize(raw), nil
}
