package category

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

func TestGet_ByNameAndSegment(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCategoryRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT (.+) FROM categories WHERE name = \? AND segment = \? LIMIT 1`).
		WithArgs("Aquecedores", constant.SegmentResidential).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("cat-1", "Aquecedores", "Residencial", nil, "active", now, now))

	got, err := repo.Get(context.Background(), &model.CategoryFilter{Name: "Aquecedores", Segment: constant.SegmentResidential})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "cat-1", got.ID)
	assert.Nil(t, got.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCategoryRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("cat-2", "Solar", "Comercial", "painéis", "active", now, now).
			AddRow("cat-1", "Aquecedores", "Residencial", nil, "inactive", now, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, constant.StatusInactive, got[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
