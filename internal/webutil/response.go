// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Tamirosss/app-server/internal/model"
)

// HandleError interprets an error and writes the matching JSON error
// response. Unknown errors become an opaque 500; their details stay in
// the logs.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    appErr.Code,
				Message: appErr.Message,
				Field:   appErr.Field,
			},
		}
	} else {
		switch {
		case errors.Is(err, model.ErrUpstreamAI):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "AI_UNAVAILABLE",
					Message: "The workout generator is currently unavailable.",
				},
			}
		case errors.Is(err, model.ErrBadGeneration):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "AI_BAD_RESPONSE",
					Message: "The workout generator returned an unusable response.",
				},
			}
		case errors.Is(err, model.ErrInvalidInput):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "INVALID_INPUT",
					Message: "The request is invalid.",
				},
			}
		case errors.Is(err, model.ErrNotFound):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "NOT_FOUND",
					Message: "The requested resource was not found.",
				},
			}
		default:
			logger.Error("Unhandled error", slog.Any("error", err))
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "INTERNAL_SERVER_ERROR",
					Message: "An internal error occurred.",
				},
			}
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUpstreamAI), errors.Is(err, model.ErrBadGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondRaw writes an already-serialized JSON document verbatim. Used
// where the contract requires passing upstream text through untouched.
func RespondRaw(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(body))
}
