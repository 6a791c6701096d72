package store

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

type StoreRepository interface {
	Create(ctx context.Context, data *model.StoreEntity) (*model.StoreEntity, error)
	Update(ctx context.Context, data *model.StoreEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.StoreFilter) (*model.StoreDetail, error)
	List(ctx context.Context) ([]model.StoreDetail, error)
}

func NewStoreRepository(conn *sqlx.DB) StoreRepository {
	return &SQL{conn: conn}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectStores() sq.SelectBuilder {
	return psql.Select(
		"s.id", "s.name", "s.city", "s.street", "s.number", "s.complement", "s.neighborhood",
		"s.zip_code", "s.phone", "s.email", "s.opening_hours", "s.manager_id", "s.status",
		"s.created_at", "s.updated_at", "m.name AS manager_name",
	).
		From("stores s").
		LeftJoin("users m ON m.id = s.manager_id")
}

func (s *SQL) Create(ctx context.Context, data *model.StoreEntity) (*model.StoreEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("stores").
		Columns("id", "name", "city", "street", "number", "complement", "neighborhood", "zip_code",
			"phone", "email", "opening_hours", "manager_id", "status", "created_at", "updated_at").
		Values(data.ID, data.Name, data.City, data.Street, data.Number, data.Complement, data.Neighborhood, data.ZipCode,
			data.Phone, data.Email, data.OpeningHours, data.ManagerID, data.Status, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.StoreEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("stores").
		SetMap(map[string]any{
			"name":          data.Name,
			"city":          data.City,
			"street":        data.Street,
			"number":        data.Number,
			"complement":    data.Complement,
			"neighborhood":  data.Neighborhood,
			"zip_code":      data.ZipCode,
			"phone":         data.Phone,
			"email":         data.Email,
			"opening_hours": data.OpeningHours,
			"manager_id":    data.ManagerID,
			"status":        data.Status,
			"updated_at":    data.UpdatedAt,
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
	query, args, err := psql.Delete("stores").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.StoreFilter) (*model.StoreDetail, error) {
	b := selectStores()
	if filter.ID != "" {
		b = b.Where(sq.Eq{"s.id": filter.ID})
	}
	if filter.Name != "" {
		b = b.Where(sq.Eq{"s.name": filter.Name})
	}

	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.StoreDetail
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.StoreDetail, error) {
	query, args, err := selectStores().OrderBy("s.created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.StoreDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
