package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/glashaus-studio/GH-VisitService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth проверяет административный токен в заголовке X-Admin-Token.
// Пустой настроенный токен закрывает административные маршруты полностью.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				handlers.RespondForbidden(w, "административный доступ не настроен")
				return
			}

			provided := r.Header.Get(adminTokenHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, "отсутствует заголовок "+adminTokenHeader)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "неверный административный токен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
