package proposal

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProposalRepository(conn)
	name := "Ana"
	data := &model.ProposalEntity{
		Segment:    constant.ProposalSegmentPool,
		ClientName: &name,
		Data:       model.JSONDoc{"volume": 40},
		Status:     constant.ProposalStatusDraft,
	}

	mock.ExpectExec(`INSERT INTO proposals`).
		WithArgs(sqlmock.AnyArg(), constant.ProposalSegmentPool, nil, nil, &name, nil, false,
			nil, `{"volume":40}`, constant.ProposalStatusDraft, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProposalRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(columns).AddRow(
		"prop-1", "residencial", "user-1", nil, "Ana", "1199", true,
		"Curitiba", []byte(`{"rooms":3}`), "draft", "apt-1", now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM proposals WHERE \(id = \?\) LIMIT 1`).
		WithArgs("prop-1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), &model.ProposalFilter{ID: "prop-1"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "apt-1", *got.AppointmentID)
	assert.Equal(t, float64(3), got.Data["rooms"])
	assert.True(t, got.IsNewClient)

	mock.ExpectQuery(`SELECT (.+) FROM proposals`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err = repo.Get(context.Background(), &model.ProposalFilter{ID: "missing"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScopedToUser(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProposalRepository(conn)

	mock.ExpectQuery(`SELECT (.+) FROM proposals WHERE \(user_id = \?\) ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), &model.ProposalFilter{UserID: "user-1"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_Window(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProposalRepository(conn)
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM proposals WHERE \(status IN \(\?,\?\) AND updated_at >= \? AND updated_at < \?\)`).
		WithArgs(constant.ProposalStatusApproved, constant.ProposalStatusCompleted, from, before).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	got, err := repo.Count(context.Background(), &model.ProposalFilter{
		Statuses:      constant.ProposalClosedStatuses,
		UpdatedFrom:   &from,
		UpdatedBefore: &before,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProposalRepository(conn)

	mock.ExpectExec(`UPDATE proposals SET (.+) WHERE id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &model.ProposalEntity{ID: "prop-1", Status: constant.ProposalStatusCancelled})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
