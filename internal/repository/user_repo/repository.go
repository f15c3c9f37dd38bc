package user_repo

import (
	"auth_backend/internal/model"
	"auth_backend/internal/repository"
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colFirstName    = "first_name"
	colLastName     = "last_name"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colRole         = "role"
	colTenantID     = "tenant_id"
	colCreatedAt    = "created_at"
	colUpdatedAt    = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) Create(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colFirstName, colLastName, colEmail, colPasswordHash, colRole, colTenantID).
		Values(user.FirstName, user.LastName, user.Email, user.Password, user.Role, user.TenantID).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByEmail - возвращает пользователя по email.
// Отсутствие пользователя - model.ErrNotFound
func (r *repo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colEmail: email})
}

// GetByID - возвращает пользователя по ID
func (r *repo) GetByID(ctx context.Context, id int) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colID: id})
}

func (r *repo) getOne(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := psql.Select(colID, colFirstName, colLastName, colEmail, colPasswordHash, colRole, colTenantID, colCreatedAt, colUpdatedAt).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.Password, &user.Role, &user.TenantID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List - возвращает всех пользователей
func (r *repo) List(ctx context.Context) ([]model.User, error) {
	// Формируем запрос
	query := psql.Select(colID, colFirstName, colLastName, colEmail, colPasswordHash, colRole, colTenantID, colCreatedAt, colUpdatedAt).
		From(table).
		OrderBy(colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err = rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email,
			&user.Password, &user.Role, &user.TenantID, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Update - обновляет данные пользователя по его ID
func (r *repo) Update(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colFirstName, user.FirstName).
		Set(colLastName, user.LastName).
		Set(colEmail, user.Email).
		Set(colRole, user.Role).
		Set(colTenantID, user.TenantID).
		Set(colUpdatedAt, time.Now()).
		Where(sq.Eq{colID: user.ID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Delete - удаляет пользователя по ID
func (r *repo) Delete(ctx context.Context, id int) error {
	// Формируем запрос
	query := psql.Delete(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
