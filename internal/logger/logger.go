// Package logger holds the global structured logger for the service,
// backed by Uber's zap, plus the HTTP request logging middleware.
package logger

import (
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Log is the global SugaredLogger. It defaults to a no-op logger so that
// packages can log before Init runs (e.g. in tests that skip wiring).
var Log = zap.NewNop().Sugar()

// Init builds the global logger with the given level ("debug", "info", ...).
func Init(level string) error {
	parsedLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = parsedLevel

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = built.Sugar()

	return nil
}

// Sync flushes buffered log entries. Call it on shutdown.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}

	return nil
}

type responseInfo struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	info *responseInfo
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.info.size += size

	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.info.status = statusCode
}

// WithLoggingHTTPMiddleware logs method, URI, response status, duration
// and body size of every request passing through it.
func WithLoggingHTTPMiddleware(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		start := time.Now()

		info := &responseInfo{}
		wrapped := &loggingResponseWriter{
			ResponseWriter: response,
			info:           info,
		}

		h.ServeHTTP(wrapped, request)

		Log.Infoln(
			"uri", request.RequestURI,
			"method", request.Method,
			"status", info.status,
			"duration", time.Since(start),
			"size", info.size,
		)
	}

	return http.HandlerFunc(middleware)
}
