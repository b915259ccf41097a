// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Tamirosss/app-server/internal/model"
	"github.com/Tamirosss/app-server/internal/service"
	"github.com/Tamirosss/app-server/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register handles POST /register. Rule violations come back as HTTP
// 200 with success=false; only storage failures produce an error
// status.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.AuthRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode register request body", slog.String("error", err.Error()))
		webutil.RespondWithJSON(w, http.StatusOK, &model.AuthResponse{
			Success: false,
			Message: "Invalid request body.",
		}, logger)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if resp.Success {
		logger.Info("User registered", slog.String("username", resp.Username), slog.Uint64("user_id", uint64(resp.UserID)))
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.AuthRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode login request body", slog.String("error", err.Error()))
		webutil.RespondWithJSON(w, http.StatusOK, &model.AuthResponse{
			Success: false,
			Message: "Invalid request body.",
		}, logger)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Error("Error logging in user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
