package middleware

import (
	"auth_backend/pkg/token"
	"context"
	"log"
	"net/http"
	"strings"
)

// Authenticate - проверка access токена: сначала заголовок
// Authorization: Bearer, затем cookie. Только подпись и срок жизни,
// без обращений к БД
func Authenticate(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				c, err := r.Cookie("accessToken")
				if err != nil || c.Value == "" {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				tokenStr = c.Value
			}

			claims, err := codec.ParseAccessToken(tokenStr)
			if err != nil {
				log.Println("access token rejected:", err)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accessClaimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	tokenStr := value[len(bearer):]
	if tokenStr == "" {
		return "", false
	}

	return tokenStr, true
}
