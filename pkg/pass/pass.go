package pass

import (
	"fmt"

	"auth_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Стоимость хэширования зафиксирована явно (>= 10 раундов)
const hashCost = 10

// HashPassword - хэширует пароль через bcrypt.
// Пустой пароль - ошибка хэширования
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("%w: empty password", model.ErrHashing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrHashing, err)
	}

	return string(hash), nil
}

// VerifyPassword - сравнивает пароль с хэшем из БД.
// При несовпадении просто возвращает false, без ошибки
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
