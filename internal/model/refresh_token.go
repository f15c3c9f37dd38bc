package model

import "time"

// RefreshTokenRecord - серверная запись о выданном refresh токене.
// Запись существует ровно до тех пор, пока токен считается действительным:
// удаление записи - единственный механизм отзыва.
type RefreshTokenRecord struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
