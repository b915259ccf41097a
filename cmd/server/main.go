// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/Tamirosss/app-server/internal/ai"
	"github.com/Tamirosss/app-server/internal/config"
	"github.com/Tamirosss/app-server/internal/handlers"
	"github.com/Tamirosss/app-server/internal/middleware"
	"github.com/Tamirosss/app-server/internal/repository"
	"github.com/Tamirosss/app-server/internal/service"
)

func main() {
	// Temporary logger until the config is loaded.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, config.Cfg.Database.FallbackPath, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		}
	}()

	// Dependency injection.
	userRepo := repository.NewGormUserRepository()
	planRepo := repository.NewGormPlanRepository()
	progressRepo := repository.NewGormProgressRepository()

	completer := ai.NewClient(config.Cfg.AI.APIKey, config.Cfg.AI.Model, config.Cfg.AI.BaseURL)

	authService := service.NewAuthService(db, userRepo)
	workoutService := service.NewWorkoutService(db, planRepo, completer)
	progressService := service.NewProgressService(db, progressRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// Generation requests wait on the AI provider; the window has to
	// cover the AI client's own 60s timeout.
	r.Use(chimiddleware.Timeout(90 * time.Second))

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/get-user-workout", workoutHandler.GetUserWorkout)
	r.Get("/workouts", workoutHandler.GenerateWorkouts)
	r.Get("/replace-exercise", workoutHandler.ReplaceExercise)
	r.Post("/progress", progressHandler.LogProgress)
	r.Get("/progress", progressHandler.ListProgress)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:        config.Cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// WriteTimeout must also cover the AI wait.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
