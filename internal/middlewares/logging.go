package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/users-crud/internal/logger"
)

// RequestIDHeader carries the request id back to the client.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// LoggingMiddleware logs every request and its response.
// It reuses an incoming X-Request-ID or generates a new one.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(rw, r)

		logger.Log.Infow("request",
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
			"duration", time.Since(start),
		)

		logger.Log.Infow("response",
			"request_id", reqID,
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
		)
	})
}

// GetRequestID returns the request id stored by LoggingMiddleware, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
