package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strconv"
	"testing"
	"time"

	"auth_backend/internal/model"
	"auth_backend/pkg/pass"
	"auth_backend/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// --- фейки ---

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (int, error) {
	id := f.nextID
	f.nextID++
	u := *user
	u.ID = id
	f.users[id] = &u
	return id, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return model.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRefreshRepo struct {
	records map[string]int // id записи -> id пользователя
	ops     []string       // порядок вызовов для проверки ротации
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{records: map[string]int{}}
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID int, ttl time.Duration) (*model.RefreshTokenRecord, error) {
	now := time.Now()
	rec := &model.RefreshTokenRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.records[rec.ID] = userID
	f.ops = append(f.ops, "create")
	return rec, nil
}

func (f *fakeRefreshRepo) Exists(_ context.Context, id string, userID int) (bool, error) {
	owner, ok := f.records[id]
	return ok && owner == userID, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	f.ops = append(f.ops, "delete")
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(_ context.Context, userID int) error {
	for id, owner := range f.records {
		if owner == userID {
			delete(f.records, id)
		}
	}
	return nil
}

type fakeJWTConfig struct {
	refreshTTL time.Duration
}

func (f fakeJWTConfig) AccessPrivateKey() []byte            { return nil }
func (f fakeJWTConfig) AccessPublicKey() []byte             { return nil }
func (f fakeJWTConfig) RefreshSecret() []byte               { return nil }
func (f fakeJWTConfig) AccessTokenDuration() time.Duration  { return time.Hour }
func (f fakeJWTConfig) RefreshTokenDuration() time.Duration { return f.refreshTTL }
func (f fakeJWTConfig) Issuer() string                      { return "auth-service" }

// --- сборка сервиса для тестов ---

type testEnv struct {
	serv        *serv
	userRepo    *fakeUserRepo
	refreshRepo *fakeRefreshRepo
	codec       *token.Codec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	codec, err := token.NewCodec(token.Config{
		AccessPrivateKey: privPEM,
		RefreshSecret:    []byte("test-secret"),
		AccessTTL:        time.Hour,
		RefreshTTL:       30 * 24 * time.Hour,
		Issuer:           "auth-service",
	})
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	refreshRepo := newFakeRefreshRepo()

	s := NewAuthService(fakeTxManager{}, userRepo, refreshRepo, codec, fakeJWTConfig{refreshTTL: 30 * 24 * time.Hour})

	return &testEnv{
		serv:        s.(*serv),
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		codec:       codec,
	}
}

func (e *testEnv) addUser(t *testing.T, email, password, role string, tenantID *int) *model.User {
	t.Helper()

	hash, err := pass.HashPassword(password)
	require.NoError(t, err)

	id, err := e.userRepo.Create(context.Background(), &model.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  hash,
		Role:      role,
		TenantID:  tenantID,
	})
	require.NoError(t, err)

	user, err := e.userRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

// --- тесты ---

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	data, err := env.serv.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, user.ID, data.UserID)

	accessClaims, err := env.codec.ParseAccessToken(data.AccessToken)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(user.ID), accessClaims.Subject)
	require.Equal(t, model.RoleCustomer, accessClaims.Role)

	refreshClaims, err := env.codec.ParseRefreshToken(data.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(user.ID), refreshClaims.Subject)

	// jti refresh токена указывает на созданную запись
	exists, err := env.refreshRepo.Exists(context.Background(), refreshClaims.ID, user.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	_, err := env.serv.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	require.Empty(t, env.refreshRepo.records)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	// Та же ошибка, что и при неверном пароле
	_, err := env.serv.Login(context.Background(), "nobody@example.com", "secret123")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	data, err := env.serv.Register(context.Background(), &model.User{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Password:  "secret123",
		Role:      model.RoleAdmin, // роль из запроса игнорируется
	})
	require.NoError(t, err)

	user, err := env.userRepo.GetByID(context.Background(), data.UserID)
	require.NoError(t, err)
	require.Equal(t, model.RoleCustomer, user.Role)
	require.NotEqual(t, "secret123", user.Password)
	require.True(t, pass.VerifyPassword(user.Password, "secret123"))

	// Сразу после регистрации токены действительны
	_, err = env.codec.ParseAccessToken(data.AccessToken)
	require.NoError(t, err)
}

func TestTenantClaim_OnlyForManager(t *testing.T) {
	env := newTestEnv(t)
	tenantID := 5

	env.addUser(t, "manager@example.com", "secret123", model.RoleManager, &tenantID)
	env.addUser(t, "customer@example.com", "secret123", model.RoleCustomer, &tenantID)

	data, err := env.serv.Login(context.Background(), "manager@example.com", "secret123")
	require.NoError(t, err)
	claims, err := env.codec.ParseAccessToken(data.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "5", claims.TenantID)

	data, err = env.serv.Login(context.Background(), "customer@example.com", "secret123")
	require.NoError(t, err)
	claims, err = env.codec.ParseAccessToken(data.AccessToken)
	require.NoError(t, err)
	require.Empty(t, claims.TenantID)
}

func TestRefresh_RotatesRecord(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	data, err := env.serv.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	oldClaims, err := env.codec.ParseRefreshToken(data.RefreshToken)
	require.NoError(t, err)

	env.refreshRepo.ops = nil

	newData, err := env.serv.Refresh(context.Background(), oldClaims)
	require.NoError(t, err)

	// Старая запись удалена до создания новой
	require.Equal(t, []string{"delete", "create"}, env.refreshRepo.ops)

	exists, err := env.refreshRepo.Exists(context.Background(), oldClaims.ID, user.ID)
	require.NoError(t, err)
	require.False(t, exists, "old record must be revoked")

	newClaims, err := env.codec.ParseRefreshToken(newData.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, oldClaims.ID, newClaims.ID)

	exists, err = env.refreshRepo.Exists(context.Background(), newClaims.ID, user.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestRefresh_PicksUpRoleChange(t *testing.T) {
	env := newTestEnv(t)
	tenantID := 9
	user := env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	data, err := env.serv.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	oldClaims, err := env.codec.ParseRefreshToken(data.RefreshToken)
	require.NoError(t, err)

	// Роль поменялась между выдачей и ротацией
	user.Role = model.RoleManager
	user.TenantID = &tenantID
	require.NoError(t, env.userRepo.Update(context.Background(), user))

	newData, err := env.serv.Refresh(context.Background(), oldClaims)
	require.NoError(t, err)

	claims, err := env.codec.ParseAccessToken(newData.AccessToken)
	require.NoError(t, err)
	require.Equal(t, model.RoleManager, claims.Role)
	require.Equal(t, "9", claims.TenantID)
}

func TestRefresh_DeletedUser(t *testing.T) {
	env := newTestEnv(t)

	claims := &model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString(), Subject: "999"},
		Role:             model.RoleCustomer,
	}

	_, err := env.serv.Refresh(context.Background(), claims)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestRefresh_BadSubject(t *testing.T) {
	env := newTestEnv(t)

	claims := &model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString(), Subject: "not-a-number"},
	}

	_, err := env.serv.Refresh(context.Background(), claims)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestLogout_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	data, err := env.serv.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	claims, err := env.codec.ParseRefreshToken(data.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, env.serv.Logout(context.Background(), claims.ID))

	exists, err := env.refreshRepo.Exists(context.Background(), claims.ID, user.ID)
	require.NoError(t, err)
	require.False(t, exists)

	// Повторный logout - тоже успех
	require.NoError(t, env.serv.Logout(context.Background(), claims.ID))
}

func TestSelf(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "user@example.com", "secret123", model.RoleCustomer, nil)

	got, err := env.serv.Self(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)

	_, err = env.serv.Self(context.Background(), 999)
	require.ErrorIs(t, err, model.ErrNotFound)
}
