package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"unlinked/internal/logger"
	"unlinked/internal/models"
	"unlinked/internal/repository"
	"unlinked/internal/service"
)

type Middleware func(http.Handler) http.Handler

type ctxKey string

const identityKey ctxKey = "identity"

// TokenCookieName - cookie сессии, выставляется при signup/login.
const TokenCookieName = "token"

// UserFromContext достает Identity запроса, положенную AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(identityKey).(*models.User)
	return user, ok
}

// WithUser кладет Identity в контекст. Экспортирован для тестов обработчиков.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// AuthMiddleware - шлюз сессии: достает токен из cookie, проверяет его,
// резолвит аккаунт (без хеша пароля) и кладет Identity в контекст.
// Все три причины отказа (нет токена / токен недействителен / аккаунт
// исчез) наружу выглядят одним 401, различаются только в логах.
func AuthMiddleware(authService service.AuthService, userRepo repository.UserRepository, log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				log.Debug().Str("path", r.URL.Path).Msg("отказ: токен не предоставлен")
				writeUnauthorized(w)
				return
			}

			userID, err := authService.ParseToken(cookie.Value)
			if err != nil {
				log.Debug().Str("path", r.URL.Path).Msg("отказ: недействительный токен")
				writeUnauthorized(w)
				return
			}

			// аккаунт мог быть удален после выпуска токена -
			// токены задним числом не отзываются
			user, err := userRepo.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					log.Debug().Str("path", r.URL.Path).Str("userId", userID).Msg("отказ: пользователь токена не найден")
					writeUnauthorized(w)
					return
				}
				log.Error().Err(err).Msg("ошибка резолва пользователя токена")
				writeServerError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Требуется авторизация"})
}

func writeServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "Внутренняя ошибка сервера"})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info().Str("method", r.Method).Str("url", r.RequestURI).Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
