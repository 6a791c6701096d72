package city

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

type CityRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CityEntity) (*model.CityEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.CityEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.CityFilter) (*model.CityEntity, error)
	List(ctx context.Context) ([]model.CityEntity, error)
	ListMonthlyData(ctx context.Context, cityIDs []string) ([]model.CityMonthlyDataEntity, error)
	InsertMonthlyDataTx(ctx context.Context, tx *sqlx.Tx, rows []model.CityMonthlyDataEntity) error
	DeleteMonthlyDataTx(ctx context.Context, tx *sqlx.Tx, cityID string) error
}

func NewCityRepository(conn *sqlx.DB) CityRepository {
	return &SQL{conn: conn}
}

var (
	psql           = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	columns        = []string{"id", "name", "latitude", "created_at", "updated_at"}
	monthlyColumns = []string{"id", "city_id", "month", "temperature", "solar_radiation", "wind_speed"}
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CityEntity) (*model.CityEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("cities").
		Columns(columns...).
		Values(data.ID, data.Name, data.Latitude, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.CityEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("cities").
		Set("name", data.Name).
		Set("latitude", data.Latitude).
		Set("updated_at", data.UpdatedAt).
		Where(sq.Eq{"id": data.ID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// Delete removes the city; monthly rows go with it through the foreign key.
func (s *SQL) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("cities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.CityFilter) (*model.CityEntity, error) {
	b := psql.Select(columns...).From("cities")
	if filter.ID != "" {
		b = b.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Name != "" {
		b = b.Where(sq.Eq{"name": filter.Name})
	}

	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.CityEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.CityEntity, error) {
	query, args, err := psql.Select(columns...).From("cities").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.CityEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListMonthlyData(ctx context.Context, cityIDs []string) ([]model.CityMonthlyDataEntity, error) {
	items := make([]model.CityMonthlyDataEntity, 0)
	if len(cityIDs) == 0 {
		return items, nil
	}

	query, args, err := psql.Select(monthlyColumns...).
		From("city_monthly_data").
		Where(sq.Eq{"city_id": cityIDs}).
		OrderBy("city_id", "month_index").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) InsertMonthlyDataTx(ctx context.Context, tx *sqlx.Tx, rows []model.CityMonthlyDataEntity) error {
	if len(rows) == 0 {
		return nil
	}

	b := psql.Insert("city_monthly_data").Columns(append(monthlyColumns, "month_index")...)
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		r := rows[i]
		b = b.Values(r.ID, r.CityID, r.Month, r.Temperature, r.SolarRadiation, r.WindSpeed, r.Month.Index())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) DeleteMonthlyDataTx(ctx context.Context, tx *sqlx.Tx, cityID string) error {
	query, args, err := psql.Delete("city_monthly_data").Where(sq.Eq{"city_id": cityID}).ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
