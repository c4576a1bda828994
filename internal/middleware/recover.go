package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/benx421/account-service/internal/api"
)

// Recover turns a panic in a handler into a JSON 500.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("panic while handling request",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()),
				)

				//nolint:errcheck // Best effort response writing
				api.InternalErrorJSONResponse(api.NewError(http.StatusInternalServerError, "Internal server error")).VisitResponse(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
