// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/service"
	"github.com/Tamirosss/app-server/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// LogProgress handles POST /progress.
func (h *ProgressHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LogProgress"))

	var req model.LogProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode progress request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	entry, err := h.service.LogProgress(r.Context(), &req)
	if err != nil {
		logger.Error("Error logging progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress logged", slog.Uint64("user_id", uint64(req.UserID)), slog.String("exercise", req.ExerciseName))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// ListProgress handles GET /progress?userId=.
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListProgress"))

	userID, err := queryUint(r, "userId")
	if err != nil {
		logger.Warn("Invalid userId query parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "userId must be a positive integer.", "userId", model.ErrInvalidInput))
		return
	}

	entries, err := h.service.ListProgress(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []model.ProgressEntry{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
