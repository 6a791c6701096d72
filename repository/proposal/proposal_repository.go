package proposal

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

type ProposalRepository interface {
	Create(ctx context.Context, data *model.ProposalEntity) (*model.ProposalEntity, error)
	Update(ctx context.Context, data *model.ProposalEntity) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, filter *model.ProposalFilter) (*model.ProposalEntity, error)
	List(ctx context.Context, filter *model.ProposalFilter) ([]model.ProposalEntity, error)
	Count(ctx context.Context, filter *model.ProposalFilter) (int64, error)
}

func NewProposalRepository(conn *sqlx.DB) ProposalRepository {
	return &SQL{conn: conn}
}

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	columns = []string{
		"id", "segment", "user_id", "client_id", "client_name", "client_phone", "is_new_client",
		"city", "data", "status", "appointment_id", "created_at", "updated_at",
	}
)

// predicates treats every *From bound as inclusive and every *Before bound as exclusive.
func predicates(filter *model.ProposalFilter) sq.And {
	conds := sq.And{}
	if filter == nil {
		return conds
	}
	if filter.ID != "" {
		conds = append(conds, sq.Eq{"id": filter.ID})
	}
	if filter.UserID != "" {
		conds = append(conds, sq.Eq{"user_id": filter.UserID})
	}
	if len(filter.Statuses) > 0 {
		conds = append(conds, sq.Eq{"status": filter.Statuses})
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedBefore != nil {
		conds = append(conds, sq.Lt{"created_at": *filter.CreatedBefore})
	}
	if filter.UpdatedFrom != nil {
		conds = append(conds, sq.GtOrEq{"updated_at": *filter.UpdatedFrom})
	}
	if filter.UpdatedBefore != nil {
		conds = append(conds, sq.Lt{"updated_at": *filter.UpdatedBefore})
	}
	return conds
}

func (s *SQL) Create(ctx context.Context, data *model.ProposalEntity) (*model.ProposalEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	query, args, err := psql.Insert("proposals").
		Columns(columns...).
		Values(data.ID, data.Segment, data.UserID, data.ClientID, data.ClientName, data.ClientPhone, data.IsNewClient,
			data.City, data.Data, data.Status, data.AppointmentID, data.CreatedAt, data.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProposalEntity) error {
	data.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("proposals").
		SetMap(map[string]any{
			"segment":        data.Segment,
			"user_id":        data.UserID,
			"client_id":      data.ClientID,
			"client_name":    data.ClientName,
			"client_phone":   data.ClientPhone,
			"is_new_client":  data.IsNewClient,
			"city":           data.City,
			"data":           data.Data,
			"status":         data.Status,
			"appointment_id": data.AppointmentID,
			"updated_at":     data.UpdatedAt,
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
	query, args, err := psql.Delete("proposals").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.ProposalFilter) (*model.ProposalEntity, error) {
	query, args, err := psql.Select(columns...).From("proposals").Where(predicates(filter)).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var entity model.ProposalEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns matching proposals, newest first.
func (s *SQL) List(ctx context.Context, filter *model.ProposalFilter) ([]model.ProposalEntity, error) {
	query, args, err := psql.Select(columns...).From("proposals").Where(predicates(filter)).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.ProposalEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.ProposalFilter) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From("proposals").Where(predicates(filter)).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
