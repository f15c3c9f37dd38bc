package auth

import (
	dto "auth_backend/internal/api/dto/auth"
	"auth_backend/internal/api/middleware"
	"auth_backend/internal/config"
	"auth_backend/internal/converter"
	"auth_backend/internal/model"
	"auth_backend/internal/service"
	"auth_backend/pkg/req"
	"auth_backend/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"

	accessTokenMaxAge  = 60 * 60           // 1 час
	refreshTokenMaxAge = 60 * 60 * 24 * 30 // 30 дней
)

type HandlerDeps struct {
	Serv      service.AuthService
	CookieCfg config.CookieConfig
}

type Handler struct {
	serv      service.AuthService
	cookieCfg config.CookieConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:      deps.Serv,
		cookieCfg: deps.CookieCfg,
	}
}

// Register создаёт пользователя, открывает сессию
// и возвращает оба токена через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if requestBody.Email == "" || requestBody.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		log.Println("Register error:", err)
		http.Error(w, "register failed", http.StatusConflict)
		return
	}

	h.setAuthCookies(w, data.AccessToken, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{ID: data.UserID})
}

// Login открывает сессию и возвращает оба токена через cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		log.Println("Login error:", err)
		// Один и тот же ответ, неверный email это или пароль
		if errors.Is(err, model.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	h.setAuthCookies(w, data.AccessToken, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{ID: data.UserID})
}

// Self возвращает данные аутентифицированного пользователя
func (h *Handler) Self(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.AccessClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.serv.Self(r.Context(), userID)
	if err != nil {
		log.Println("Self error:", err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(user))
}

// Refresh меняет старую пару токенов на новую.
// Проверку отзыва уже сделал middleware
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.RefreshClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := h.serv.Refresh(r.Context(), claims)
	if err != nil {
		log.Println("Refresh error:", err)
		h.clearAuthCookies(w)
		http.Error(w, "refresh failed", http.StatusUnauthorized)
		return
	}

	h.setAuthCookies(w, data.AccessToken, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{ID: data.UserID})
}

// Logout закрывает сессию и чистит cookies.
// Повторный logout по той же сессии тоже успех
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.RefreshClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	err := h.serv.Logout(r.Context(), claims.ID)
	if err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	h.clearAuthCookies(w)

	w.WriteHeader(http.StatusOK)
}

// setAuthCookies устанавливает cookies с access и refresh токенами
func (h *Handler) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		Domain:   h.cookieCfg.Domain(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   accessTokenMaxAge,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Domain:   h.cookieCfg.Domain(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   refreshTokenMaxAge,
	})
}

// clearAuthCookies удаляет обе cookies
func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   h.cookieCfg.Domain(),
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
