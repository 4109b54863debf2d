// internal/auth/context.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/user"
)

type contextKey string

const currentUserKey = contextKey("currentUser")

// Сохраняет текущего пользователя в контексте
func WithUser(ctx context.Context, u *api.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// Достает текущего пользователя из контекста
func CurrentUser(ctx context.Context) (*api.User, error) {
	val := ctx.Value(currentUserKey)
	u, ok := val.(*api.User)
	if !ok || u == nil {
		return nil, errors.New("user not found in context")
	}
	return u, nil
}

// Middleware извлекает JWT из заголовка Authorization, валидирует его и кладет
// пользователя в context. Пользователь перечитывается из хранилища на каждый запрос,
// чтобы смена is_staff действовала без повторного логина.
func Middleware(users user.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractTokenFromHeader(r.Header.Get("Authorization"))
			if tokenStr == "" {
				next.ServeHTTP(w, r) // неавторизованный доступ — пропускаем
				return
			}

			claims, err := ParseToken(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r) // если невалидный токен — пропускаем
				return
			}

			userID, tokenType, err := TokenSubject(claims)
			if err != nil || tokenType != TokenTypeAccess {
				next.ServeHTTP(w, r) // refresh токен не дает доступа к ресурсам
				return
			}

			u, err := users.GetUserById(userID)
			if errors.Is(err, user.ErrUserNotFound) {
				next.ServeHTTP(w, r) // пользователь мог быть удален
				return
			}
			if err != nil {
				// ошибка хранилища - это не анонимный запрос
				writeDetail(w, http.StatusInternalServerError, "Internal server error.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
