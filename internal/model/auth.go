package model

// TokenPayload - данные пользователя, попадающие в claims обоих токенов.
// TenantID заполняется только для роли manager.
type TokenPayload struct {
	UserID   int
	Role     string
	TenantID *int
}

type AuthData struct {
	UserID       int
	AccessToken  string
	RefreshToken string
}
