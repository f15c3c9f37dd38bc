package middleware

import (
	"auth_backend/internal/repository"
	"auth_backend/pkg/token"
	"context"
	"log"
	"net/http"
	"strconv"
)

// ValidateRefresh - проверка refresh токена: подпись и срок, затем
// проверка отзыва по хранилищу. Токен берется только из cookie.
// Ошибка поиска в хранилище трактуется как отозванный токен
func ValidateRefresh(codec *token.Codec, refreshRepo repository.RefreshTokenRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie("refreshToken")
			if err != nil || c.Value == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := codec.ParseRefreshToken(c.Value)
			if err != nil {
				log.Println("refresh token rejected:", err)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// Без ID записи и владельца проверка отзыва невозможна
			if claims.ID == "" || claims.Subject == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.Subject)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			exists, err := refreshRepo.Exists(r.Context(), claims.ID, userID)
			if err != nil {
				log.Println("refresh token lookup:", err)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !exists {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), refreshClaimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
