package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/logger"
)

// Recover atrapa panics de los handlers: loguea el valor y el stack, y
// responde 500 genérico. El detalle nunca viaja al cliente.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recuperado", map[string]any{
						"error":      fmt.Sprintf("%v", rec),
						"stack":      string(debug.Stack()),
						"method":     r.Method,
						"path":       r.URL.Path,
						"request_id": GetRequestID(r.Context()),
					})
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
