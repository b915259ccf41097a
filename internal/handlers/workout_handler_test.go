// internal/handlers/workout_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tamirosss/app-server/internal/handlers"
	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/service/mocks"
)

func newWorkoutRouter(mockService *mocks.WorkoutService) *chi.Mux {
	handler := handlers.NewWorkoutHandler(mockService, nil)
	router := chi.NewRouter()
	router.Get("/get-user-workout", handler.GetUserWorkout)
	router.Get("/workouts", handler.GenerateWorkouts)
	router.Get("/replace-exercise", handler.ReplaceExercise)
	return router
}

func TestWorkoutHandler_GetUserWorkout(t *testing.T) {
	t.Run("empty plan set returns empty array", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		mockService.On("GetPlans", mock.Anything, uint(5)).Return([]model.PlanPayload{}, nil).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/get-user-workout?userId=5", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("plans serialize with the contract field names", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		mockService.On("GetPlans", mock.Anything, uint(5)).Return([]model.PlanPayload{
			{
				Name: "Push Day",
				Excercises: []model.ExercisePayload{
					{Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 90, VideoLink: "Bench Press"},
				},
			},
		}, nil).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/get-user-workout?userId=5", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		// The misspelled "excercises" key and the exact exercise field
		// names are part of the response contract.
		assert.JSONEq(t,
			`[{"name":"Push Day","excercises":[{"name":"Bench Press","sets":4,"reps":8,"restTime":90,"videoLink":"Bench Press"}]}]`,
			rr.Body.String())
		assert.Contains(t, rr.Body.String(), `"excercises"`)
		mockService.AssertExpectations(t)
	})

	t.Run("missing userId is a 400", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/get-user-workout", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetPlans", mock.Anything, mock.Anything)
	})
}

func TestWorkoutHandler_GenerateWorkouts(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		expectedReq := &model.GeneratePlanRequest{
			UserID:   1,
			Age:      30,
			Gender:   "male",
			History:  "beginner",
			Goal:     "hypertrophy",
			Location: "gym",
			Weight:   80.5,
			Height:   180,
			Amount:   3,
		}
		generated := []model.PlanPayload{{Name: "Day 1", Excercises: []model.ExercisePayload{}}}
		mockService.On("GeneratePlans", mock.Anything, expectedReq).Return(generated, nil).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
			"/workouts?userId=1&age=30&gender=male&history=beginner&goal=hypertrophy&location=gym&weight=80.5&height=180&amount=3", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []model.PlanPayload
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generated, resp)
		mockService.AssertExpectations(t)
	})

	t.Run("upstream failure is an opaque 502", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		mockService.On("GeneratePlans", mock.Anything, mock.Anything).Return(nil, model.ErrUpstreamAI).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/workouts?userId=1&amount=3", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "AI_UNAVAILABLE", errResp.Error.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("bad generation is an opaque 502", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		mockService.On("GeneratePlans", mock.Anything, mock.Anything).Return(nil, model.ErrBadGeneration).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/workouts?userId=1&amount=3", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "AI_BAD_RESPONSE", errResp.Error.Code)
		mockService.AssertExpectations(t)
	})
}

func TestWorkoutHandler_ReplaceExercise(t *testing.T) {
	t.Run("returns sanitized text verbatim", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		raw := `{"name":"Incline Press","sets":4,"reps":10,"restTime":90,"videoLink":"Incline Press"}`
		mockService.On("ReplaceExercise", mock.Anything, "Bench Press").Return(raw, nil).Once()
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/replace-exercise?exerciseName=Bench+Press", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		// Byte-for-byte pass-through, no re-serialization.
		assert.Equal(t, raw, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("missing exerciseName is a 400", func(t *testing.T) {
		mockService := new(mocks.WorkoutService)
		router := newWorkoutRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/replace-exercise", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ReplaceExercise", mock.Anything, mock.Anything)
	})
}
