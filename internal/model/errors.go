package model

import "errors"

var (
	// Ошибки аутентификации (наружу всегда уходит общий 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Подвиды ErrInvalidToken - различаются только в логах.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")

	// Фатальные для запроса ошибки (500).
	ErrSigning = errors.New("token signing failed")
	ErrHashing = errors.New("password hashing failed")

	// Ошибки хранилища.
	ErrNotFound = errors.New("not found")
)
