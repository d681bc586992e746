package middleware

import (
	"context"
	"net/http"

	"github.com/frahmantamala/employee-directory/pkg/logger"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestID reuses the caller's X-Request-ID or mints one, and attaches it to
// the context logger and the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		ctx = logger.With(ctx, "request_id", reqID)

		w.Header().Set(HeaderRequestID, reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
