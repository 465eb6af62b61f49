package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers"
)

type userIDKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя
// в контекст запроса. Аутентификацию выполняет внешний шлюз; сервис
// доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header is invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
