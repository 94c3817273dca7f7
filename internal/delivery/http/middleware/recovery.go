package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"groupschedule/internal/delivery/http/helpers"
)

// Recovery turns a panic in next into a 500 JSON error and logs the stack.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := wrapResponseWriter(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path,
				"method", r.Method,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			if !wrapped.wroteHeader {
				helpers.WriteJSONError(wrapped, http.StatusInternalServerError, helpers.MsgInternalError)
			}
		}()
		next.ServeHTTP(wrapped, r)
	})
}
