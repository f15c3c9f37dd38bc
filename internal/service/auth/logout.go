package auth

import "context"

// Logout - удаляет запись о refresh токене.
// Удаление уже отсутствующей записи не ошибка: повторный logout тоже успех
func (s *serv) Logout(ctx context.Context, recordID string) error {
	return s.refreshRepo.Delete(ctx, recordID)
}
