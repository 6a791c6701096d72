package appointment

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

type AppointmentRepository interface {
	Create(ctx context.Context, data *model.AppointmentEntity) (*model.AppointmentEntity, error)
	Update(ctx context.Context, data *model.AppointmentEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.AppointmentFilter) (*model.AppointmentDetail, error)
	List(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentDetail, error)
	Count(ctx context.Context, filter *model.AppointmentFilter) (int64, error)
}

func NewAppointmentRepository(conn *sqlx.DB) AppointmentRepository {
	return &SQL{conn: conn}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectAppointments() sq.SelectBuilder {
	return psql.Select(
		"a.id", "a.date", "a.time", "a.store_id", "a.seller_id", "a.client_id", "a.address",
		"a.duration", "a.status", "a.channel", "a.auto_assign", "a.created_at", "a.updated_at",
		"st.name AS store_name", "se.name AS seller_name", "cl.name AS client_name",
	).
		From("appointments a").
		LeftJoin("stores st ON st.id = a.store_id").
		LeftJoin("users se ON se.id = a.seller_id").
		LeftJoin("users cl ON cl.id = a.client_id")
}

func predicates(filter *model.AppointmentFilter) sq.And {
	conds := sq.And{}
	if filter == nil {
		return conds
	}
	if filter.ID != "" {
		conds = append(conds, sq.Eq{"a.id": filter.ID})
	}
	if filter.Date != nil {
		conds = append(conds, sq.Eq{"a.date": filter.Date.Format("2006-01-02")})
	}
	if filter.DateFrom != nil {
		conds = append(conds, sq.GtOrEq{"a.date": filter.DateFrom.Format("2006-01-02")})
	}
	if filter.Time != "" {
		conds = append(conds, sq.Eq{"a.time": filter.Time})
	}
	if filter.SellerID != "" {
		conds = append(conds, sq.Eq{"a.seller_id": filter.SellerID})
	}
	if len(filter.SellerIDs) > 0 {
		conds = append(conds, sq.Eq{"a.seller_id": filter.SellerIDs})
	}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"a.status": filter.Status})
	}
	return conds
}

func (s *SQL) Create(ctx context.Context, data *model.AppointmentEntity) (*model.AppointmentEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("appointments").
		Columns("id", "date", "time", "store_id", "seller_id", "client_id", "address",
			"duration", "status", "channel", "auto_assign", "created_at", "updated_at").
		Values(data.ID, data.Date.Format("2006-01-02"), data.Time, data.StoreID, data.SellerID, data.ClientID, data.Address,
			data.Duration, data.Status, data.Channel, data.AutoAssign, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.AppointmentEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("appointments").
		SetMap(map[string]any{
			"date":        data.Date.Format("2006-01-02"),
			"time":        data.Time,
			"store_id":    data.StoreID,
			"seller_id":   data.SellerID,
			"client_id":   data.ClientID,
			"address":     data.Address,
			"duration":    data.Duration,
			"status":      data.Status,
			"channel":     data.Channel,
			"auto_assign": data.AutoAssign,
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
	query, args, err := psql.Delete("appointments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.AppointmentFilter) (*model.AppointmentDetail, error) {
	query, args, err := selectAppointments().Where(predicates(filter)).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.AppointmentDetail
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns appointments ordered by date then "HH:MM" time, both ascending.
func (s *SQL) List(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentDetail, error) {
	b := selectAppointments().Where(predicates(filter)).OrderBy("a.date ASC", "a.time ASC")
	if filter != nil && filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.AppointmentDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.AppointmentFilter) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From("appointments a").Where(predicates(filter)).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
