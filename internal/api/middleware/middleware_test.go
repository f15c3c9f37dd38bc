package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auth_backend/internal/model"
	"auth_backend/pkg/token"

	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, accessTTL time.Duration) *token.Codec {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	c, err := token.NewCodec(token.Config{
		AccessPrivateKey: privPEM,
		RefreshSecret:    []byte("test-secret"),
		AccessTTL:        accessTTL,
		RefreshTTL:       time.Hour,
		Issuer:           "auth-service",
	})
	require.NoError(t, err)

	return c
}

type fakeRefreshStore struct {
	records map[string]int
	err     error
	calls   int
}

func (f *fakeRefreshStore) Create(_ context.Context, _ int, _ time.Duration) (*model.RefreshTokenRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRefreshStore) Exists(_ context.Context, id string, userID int) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	owner, ok := f.records[id]
	return ok && owner == userID, nil
}

func (f *fakeRefreshStore) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeRefreshStore) DeleteByUser(_ context.Context, _ int) error { return nil }

// nextHandler записывает claims, дошедшие до следующего обработчика
func accessNext(claims **model.UserClaims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := AccessClaimsFromContext(r.Context())
		*claims = c
		w.WriteHeader(http.StatusOK)
	})
}

func refreshNext(claims **model.UserClaims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := RefreshClaimsFromContext(r.Context())
		*claims = c
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	signed, err := codec.GenerateAccessToken(model.TokenPayload{UserID: 42, Role: model.RoleAdmin})
	require.NoError(t, err)

	var claims *model.UserClaims
	h := Authenticate(codec)(accessNext(&claims))

	r := httptest.NewRequest(http.MethodGet, "/auth/self", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, claims)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthenticate_CookieFallback(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	signed, err := codec.GenerateAccessToken(model.TokenPayload{UserID: 7, Role: model.RoleCustomer})
	require.NoError(t, err)

	var claims *model.UserClaims
	h := Authenticate(codec)(accessNext(&claims))

	r := httptest.NewRequest(http.MethodGet, "/auth/self", nil)
	r.AddCookie(&http.Cookie{Name: "accessToken", Value: signed})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, claims)
	require.Equal(t, "7", claims.Subject)
}

func TestAuthenticate_Rejects(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	expired := newTestCodec(t, -time.Minute)

	expiredToken, err := expired.GenerateAccessToken(model.TokenPayload{UserID: 1, Role: model.RoleCustomer})
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"garbage header", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-token")
		}},
		{"empty bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer ")
		}},
		{"expired token", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "accessToken", Value: expiredToken})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var claims *model.UserClaims
			h := Authenticate(codec)(accessNext(&claims))

			r := httptest.NewRequest(http.MethodGet, "/auth/self", nil)
			tt.setup(r)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Nil(t, claims)
		})
	}
}

func TestValidateRefresh_Success(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{records: map[string]int{"rec-1": 42}}

	signed, err := codec.GenerateRefreshToken(model.TokenPayload{UserID: 42, Role: model.RoleCustomer}, "rec-1")
	require.NoError(t, err)

	var claims *model.UserClaims
	h := ValidateRefresh(codec, store)(refreshNext(&claims))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "refreshToken", Value: signed})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, claims)
	require.Equal(t, "rec-1", claims.ID)
	require.Equal(t, "42", claims.Subject)
}

func TestValidateRefresh_Revoked(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{records: map[string]int{}}

	signed, err := codec.GenerateRefreshToken(model.TokenPayload{UserID: 42, Role: model.RoleCustomer}, "rec-1")
	require.NoError(t, err)

	h := ValidateRefresh(codec, store)(refreshNext(new(*model.UserClaims)))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "refreshToken", Value: signed})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateRefresh_WrongOwner(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{records: map[string]int{"rec-1": 99}}

	signed, err := codec.GenerateRefreshToken(model.TokenPayload{UserID: 42, Role: model.RoleCustomer}, "rec-1")
	require.NoError(t, err)

	h := ValidateRefresh(codec, store)(refreshNext(new(*model.UserClaims)))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "refreshToken", Value: signed})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Ошибка хранилища = отказ, а не пропуск
func TestValidateRefresh_StoreError(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{err: errors.New("connection refused")}

	signed, err := codec.GenerateRefreshToken(model.TokenPayload{UserID: 42, Role: model.RoleCustomer}, "rec-1")
	require.NoError(t, err)

	h := ValidateRefresh(codec, store)(refreshNext(new(*model.UserClaims)))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "refreshToken", Value: signed})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Подделанный токен не должен доходить до хранилища
func TestValidateRefresh_BadSignature(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{records: map[string]int{"rec-1": 42}}

	forged, err := forgeRefreshToken(t, model.TokenPayload{UserID: 42, Role: model.RoleCustomer})
	require.NoError(t, err)

	h := ValidateRefresh(codec, store)(refreshNext(new(*model.UserClaims)))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "refreshToken", Value: forged})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, store.calls, "store must not be touched for a forged token")
}

func forgeRefreshToken(t *testing.T, payload model.TokenPayload) (string, error) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	forger, err := token.NewCodec(token.Config{
		AccessPrivateKey: privPEM,
		RefreshSecret:    []byte("attacker-secret"),
		AccessTTL:        time.Hour,
		RefreshTTL:       time.Hour,
		Issuer:           "auth-service",
	})
	require.NoError(t, err)

	return forger.GenerateRefreshToken(payload, "rec-1")
}

func TestValidateRefresh_NoCookie(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	store := &fakeRefreshStore{records: map[string]int{}}

	h := ValidateRefresh(codec, store)(refreshNext(new(*model.UserClaims)))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, store.calls)
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		want   int
		claims bool
	}{
		{"admin allowed", model.RoleAdmin, http.StatusOK, true},
		{"manager denied", model.RoleManager, http.StatusForbidden, true},
		{"customer denied", model.RoleCustomer, http.StatusForbidden, true},
		{"no claims", "", http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CanAccess(model.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.claims {
				ctx := context.WithValue(r.Context(), accessClaimsKey{}, &model.UserClaims{Role: tt.role})
				r = r.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			require.Equal(t, tt.want, w.Code)
		})
	}
}
