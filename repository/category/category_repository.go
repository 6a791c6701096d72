package category

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

type CategoryRepository interface {
	Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error)
	Update(ctx context.Context, data *model.CategoryEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error)
	List(ctx context.Context) ([]model.CategoryEntity, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	columns = []string{"id", "name", "segment", "description", "status", "created_at", "updated_at"}
)

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("categories").
		Columns(columns...).
		Values(data.ID, data.Name, data.Segment, data.Description, data.Status, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("categories").
		SetMap(map[string]any{
			"name":        data.Name,
			"segment":     data.Segment,
			"description": data.Description,
			"status":      data.Status,
			"updated_at":  data.UpdatedAt,
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
	query, args, err := psql.Delete("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error) {
	b := psql.Select(columns...).From("categories")
	if filter.ID != "" {
		b = b.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Name != "" {
		b = b.Where(sq.Eq{"name": filter.Name})
	}
	if filter.Segment != "" {
		b = b.Where(sq.Eq{"segment": filter.Segment})
	}

	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.CategoryEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	query, args, err := psql.Select(columns...).From("categories").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
