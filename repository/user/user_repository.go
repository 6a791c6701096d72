package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heating-backoffice/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserDetail, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserDetail, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectUsers() sq.SelectBuilder {
	return psql.Select(
		"u.id", "u.email", "u.password", "u.name", "u.phone", "u.role", "u.type",
		"u.store_id", "u.is_active", "u.created_at", "u.updated_at", "s.name AS store_name",
	).
		From("users u").
		LeftJoin("stores s ON s.id = u.store_id")
}

func applyFilter(b sq.SelectBuilder, filter *model.UserFilter) sq.SelectBuilder {
	if filter == nil {
		return b
	}
	if filter.ID != "" {
		b = b.Where(sq.Eq{"u.id": filter.ID})
	}
	if filter.Email != "" {
		b = b.Where(sq.Eq{"u.email": filter.Email})
	}
	if filter.StoreID != "" {
		b = b.Where(sq.Eq{"u.store_id": filter.StoreID})
	}
	if filter.Role != "" {
		b = b.Where(sq.Eq{"u.role": filter.Role})
	}
	if filter.IsActive != nil {
		b = b.Where(sq.Eq{"u.is_active": *filter.IsActive})
	}
	return b
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("users").
		Columns("id", "email", "password", "name", "phone", "role", "type", "store_id", "is_active", "created_at", "updated_at").
		Values(data.ID, data.Email, data.PasswordHash, data.Name, data.Phone, data.Role, data.Type, data.StoreID, data.IsActive, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("users").
		SetMap(map[string]any{
			"email":      data.Email,
			"password":   data.PasswordHash,
			"name":       data.Name,
			"phone":      data.Phone,
			"role":       data.Role,
			"type":       data.Type,
			"store_id":   data.StoreID,
			"is_active":  data.IsActive,
			"updated_at": data.UpdatedAt,
		}).
		Where(sq.Eq{"id": data.ID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserDetail, error) {
	query, args, err := applyFilter(selectUsers(), filter).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.UserDetail
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns matching users, newest first.
func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserDetail, error) {
	query, args, err := applyFilter(selectUsers(), filter).OrderBy("u.created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.UserDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
