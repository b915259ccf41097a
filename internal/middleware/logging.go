package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey keys the request-scoped logger in the context.
type logCtxKey struct{}

// sensitiveHeaders lists header names whose values are masked in logs.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// responseLogger wraps http.ResponseWriter to record the status code
// and the number of bytes written.
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	bytesOut   int
}

func newResponseLogger(w http.ResponseWriter) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	rl.bytesOut += len(b)
	return rl.ResponseWriter.Write(b)
}

// LoggingMiddleware logs request start/completion and injects a
// request-scoped logger (tagged with the chi request ID) into the
// context for downstream layers.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			ctx := context.WithValue(r.Context(), logCtxKey{}, requestLogger)
			r = r.WithContext(ctx)

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			rl := newResponseLogger(w)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			statusCode := rl.statusCode

			logLevel := slog.LevelInfo
			if statusCode >= 500 {
				logLevel = slog.LevelError
			} else if statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.bytesOut,
			)

			if logger.Enabled(r.Context(), slog.LevelDebug) {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"query", r.URL.RawQuery,
				)
			}
		})
	}
}

// GetLogger returns the request-scoped logger, or the default logger
// outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}
