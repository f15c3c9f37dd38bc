package user

import "context"

// Delete - удаляет пользователя вместе со всеми его refresh записями.
// FK в схеме тоже каскадный, но явное удаление в транзакции не зависит от DDL
func (s *serv) Delete(ctx context.Context, id int) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Отозвать все сессии пользователя
		if err := s.refreshRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}

		// 2. Удалить самого пользователя
		return s.userRepo.Delete(ctx, id)
	})
}
