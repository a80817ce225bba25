package middleware

import (
	"fmt"
	"net/http"

	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/platform/web"
)

// Recover atrapa panics de los handlers, los loguea y responde el
// envelope 500 uniforme (con detalle solo en APP_ENV=development).
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", map[string]any{
						"panic":  fmt.Sprintf("%v", rec),
						"method": r.Method,
						"path":   r.URL.Path,
					})
					web.Err(w, fmt.Errorf("panic: %v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
