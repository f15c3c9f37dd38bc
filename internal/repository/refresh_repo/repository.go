package refresh_repo

import (
	"auth_backend/internal/model"
	"auth_backend/internal/repository"
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "refresh_tokens"
	colID        = "id"
	colUserID    = "user_id"
	colExpiresAt = "expires_at"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRefreshTokenRepository(dbc *pgxpool.Pool) repository.RefreshTokenRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает запись о выданном refresh токене.
// ID генерируется на сервере, запись живет now + ttl
func (r *repo) Create(ctx context.Context, userID int, ttl time.Duration) (*model.RefreshTokenRecord, error) {
	now := time.Now()
	record := &model.RefreshTokenRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Формируем запрос
	query := psql.Insert(table).
		Columns(colID, colUserID, colExpiresAt, colCreatedAt, colUpdatedAt).
		Values(record.ID, record.UserID, record.ExpiresAt, record.CreatedAt, record.UpdatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Exists - проверка отзыва: запись ищется и по ID, и по владельцу,
// чтобы токен одного пользователя не проходил по записи другого
func (r *repo) Exists(ctx context.Context, id string, userID int) (bool, error) {
	// Формируем запрос
	query := psql.Select("1").
		From(table).
		Where(sq.Eq{colID: id, colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Delete - удаляет запись (отзыв токена).
// Удаление отсутствующей записи не ошибка
func (r *repo) Delete(ctx context.Context, id string) error {
	// Формируем запрос
	query := psql.Delete(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// DeleteByUser - удаляет все записи пользователя (при удалении самого пользователя)
func (r *repo) DeleteByUser(ctx context.Context, userID int) error {
	// Формируем запрос
	query := psql.Delete(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
