package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 internal_failure response and
// logs the panic value with its stack. http.ErrAbortHandler is re-panicked
// so the server can abort the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := []slog.Attr{
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				attrs = append(attrs, ctxutil.LogAttrs(r.Context())...)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "internal_failure", "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
