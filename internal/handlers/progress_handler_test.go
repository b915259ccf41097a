// internal/handlers/progress_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tamirosss/app-server/internal/handlers"
	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/service/mocks"
)

func newProgressRouter(mockService *mocks.ProgressService) *chi.Mux {
	handler := handlers.NewProgressHandler(mockService, nil)
	router := chi.NewRouter()
	router.Post("/progress", handler.LogProgress)
	router.Get("/progress", handler.ListProgress)
	return router
}

func TestProgressHandler_LogProgress(t *testing.T) {
	validBody := model.LogProgressRequest{
		UserID:       1,
		ExerciseName: "Squat",
		Sets:         5,
		Reps:         5,
		Weight:       80,
	}

	t.Run("valid request is stored", func(t *testing.T) {
		mockService := new(mocks.ProgressService)
		entry := &model.ProgressEntry{ID: 1, ExerciseName: "Squat", Sets: 5, Reps: 5, Weight: 80, CompletedAt: time.Now()}
		mockService.On("LogProgress", mock.Anything, &validBody).Return(entry, nil).Once()
		router := newProgressRouter(mockService)

		req := newJSONRequest(t, http.MethodPost, "/progress", validBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp model.ProgressEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Squat", resp.ExerciseName)
		mockService.AssertExpectations(t)
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		mockService := new(mocks.ProgressService)
		router := newProgressRouter(mockService)

		// Missing exerciseName and sets.
		req := newJSONRequest(t, http.MethodPost, "/progress", model.LogProgressRequest{UserID: 1, Reps: 5})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		mockService.AssertNotCalled(t, "LogProgress", mock.Anything, mock.Anything)
	})
}

func TestProgressHandler_ListProgress(t *testing.T) {
	mockService := new(mocks.ProgressService)
	mockService.On("ListProgress", mock.Anything, uint(1)).Return([]model.ProgressEntry{}, nil).Once()
	router := newProgressRouter(mockService)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/progress?userId=1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
	mockService.AssertExpectations(t)
}
