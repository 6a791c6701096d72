package product

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

type ProductRepository interface {
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	Update(ctx context.Context, data *model.ProductEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.ProductFilter) (*model.ProductEntity, error)
	List(ctx context.Context) ([]model.ProductEntity, error)
	CountByCategory(ctx context.Context, categoryName string) (int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	columns = []string{
		"id", "code", "description", "proposal_description", "segment", "category_1", "category_2",
		"technical_specs", "cost", "sale_value", "status", "created_at", "updated_at",
	}
)

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("products").
		Columns(columns...).
		Values(data.ID, data.Code, data.Description, data.ProposalDescription, data.Segment, data.Category1, data.Category2,
			data.TechnicalSpecs, data.Cost, data.SaleValue, data.Status, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("products").
		SetMap(map[string]any{
			"code":                 data.Code,
			"description":          data.Description,
			"proposal_description": data.ProposalDescription,
			"segment":              data.Segment,
			"category_1":           data.Category1,
			"category_2":           data.Category2,
			"technical_specs":      data.TechnicalSpecs,
			"cost":                 data.Cost,
			"sale_value":           data.SaleValue,
			"status":               data.Status,
			"updated_at":           data.UpdatedAt,
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
	query, args, err := psql.Delete("products").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.ProductFilter) (*model.ProductEntity, error) {
	b := psql.Select(columns...).From("products")
	if filter.ID != "" {
		b = b.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Code != "" {
		b = b.Where(sq.Eq{"code": filter.Code})
	}

	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.ProductEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	query, args, err := psql.Select(columns...).From("products").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.ProductEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByCategory matches the category name byte for byte against either category column,
// regardless of the column collation.
func (s *SQL) CountByCategory(ctx context.Context, categoryName string) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("products").
		Where(sq.Or{sq.Expr("BINARY category_1 = ?", categoryName), sq.Expr("BINARY category_2 = ?", categoryName)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
