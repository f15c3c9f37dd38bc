package tenant_repo

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
	table        = "tenants"
	colID        = "id"
	colName      = "name"
	colAddress   = "address"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTenantRepository(dbc *pgxpool.Pool) repository.TenantRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает арендатора, возвращает его ID
func (r *repo) Create(ctx context.Context, tenant *model.Tenant) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colName, colAddress).
		Values(tenant.Name, tenant.Address).
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

// GetByID - возвращает арендатора по ID
func (r *repo) GetByID(ctx context.Context, id int) (*model.Tenant, error) {
	// Формируем запрос
	query := psql.Select(colID, colName, colAddress, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tenant model.Tenant
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&tenant.ID, &tenant.Name, &tenant.Address, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &tenant, nil
}

// List - возвращает всех арендаторов
func (r *repo) List(ctx context.Context) ([]model.Tenant, error) {
	// Формируем запрос
	query := psql.Select(colID, colName, colAddress, colCreatedAt, colUpdatedAt).
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

	var tenants []model.Tenant
	for rows.Next() {
		var tenant model.Tenant
		err = rows.Scan(&tenant.ID, &tenant.Name, &tenant.Address, &tenant.CreatedAt, &tenant.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}

	return tenants, rows.Err()
}

// Update - обновляет арендатора по ID
func (r *repo) Update(ctx context.Context, tenant *model.Tenant) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colName, tenant.Name).
		Set(colAddress, tenant.Address).
		Set(colUpdatedAt, time.Now()).
		Where(sq.Eq{colID: tenant.ID})

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

// Delete - удаляет арендатора по ID
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
