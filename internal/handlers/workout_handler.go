// internal/handlers/workout_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/service"
	"github.com/Tamirosss/app-server/internal/webutil"
)

type WorkoutHandler struct {
	service service.WorkoutService
	logger  *slog.Logger
}

func NewWorkoutHandler(s service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutHandler{
		service: s,
		logger:  logger,
	}
}

// GetUserWorkout handles GET /get-user-workout?userId=. A user with no
// plans gets an empty array, not an error.
func (h *WorkoutHandler) GetUserWorkout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUserWorkout"))

	userID, err := queryUint(r, "userId")
	if err != nil {
		logger.Warn("Invalid userId query parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "userId must be a positive integer.", "userId", model.ErrInvalidInput))
		return
	}

	plans, err := h.service.GetPlans(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting workout plans in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if plans == nil {
		plans = []model.PlanPayload{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, plans, logger)
}

// GenerateWorkouts handles GET /workouts: it generates a fresh plan
// set, replaces the stored one, and returns the new set. The stat
// fields are forwarded to the prompt without range checks.
func (h *WorkoutHandler) GenerateWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GenerateWorkouts"))

	userID, err := queryUint(r, "userId")
	if err != nil {
		logger.Warn("Invalid userId query parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "userId must be a positive integer.", "userId", model.ErrInvalidInput))
		return
	}

	req := &model.GeneratePlanRequest{
		UserID:   userID,
		Age:      queryInt(r, "age"),
		Gender:   r.URL.Query().Get("gender"),
		History:  r.URL.Query().Get("history"),
		Goal:     r.URL.Query().Get("goal"),
		Location: r.URL.Query().Get("location"),
		Weight:   queryFloat(r, "weight"),
		Height:   queryFloat(r, "height"),
		Amount:   queryInt(r, "amount"),
	}

	plans, err := h.service.GeneratePlans(r.Context(), req)
	if err != nil {
		logger.Error("Error generating workout plans in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Workout plans generated", slog.Uint64("user_id", uint64(userID)), slog.Int("count", len(plans)))
	webutil.RespondWithJSON(w, http.StatusOK, plans, logger)
}

// ReplaceExercise handles GET /replace-exercise?exerciseName=. The
// sanitized AI text is passed through verbatim: no parsing, no
// persistence.
func (h *WorkoutHandler) ReplaceExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReplaceExercise"))

	exerciseName := r.URL.Query().Get("exerciseName")
	if exerciseName == "" {
		logger.Warn("Missing exerciseName query parameter")
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "exerciseName is required.", "exerciseName", model.ErrInvalidInput))
		return
	}

	text, err := h.service.ReplaceExercise(r.Context(), exerciseName)
	if err != nil {
		logger.Error("Error replacing exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondRaw(w, http.StatusOK, text)
}

// queryUint parses a required positive integer query parameter.
func queryUint(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// queryInt and queryFloat parse leniently: a missing or malformed value
// becomes zero and flows into the prompt unchecked.
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

func queryFloat(r *http.Request, name string) float64 {
	v, _ := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	return v
}
