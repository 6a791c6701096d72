package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/repository/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByCategory(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProductRepository(conn)

	t.Run("matches either column", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE \(BINARY category_1 = \? OR BINARY category_2 = \?\)`).
			WithArgs("Aquecedores", "Aquecedores").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		got, err := repo.CountByCategory(context.Background(), "Aquecedores")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)
	})

	t.Run("differently cased name does not match", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE \(BINARY category_1 = \? OR BINARY category_2 = \?\)`).
			WithArgs("aquecedores", "aquecedores").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		got, err := repo.CountByCategory(context.Background(), "aquecedores")
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("boom"))

		_, err := repo.CountByCategory(context.Background(), "Aquecedores")
		require.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ByCode(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProductRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(columns).AddRow(
		"prod-1", "AQ-100", "Aquecedor", "Aquecedor solar", "Residencial", "Aquecedores", "Solar",
		[]byte(`{"power":"3kW"}`), "1200.50", "1999.90", "active", now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM products WHERE code = \? LIMIT 1`).
		WithArgs("AQ-100").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), &model.ProductFilter{Code: "AQ-100"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("1999.90").Equal(got.SaleValue))
	assert.Equal(t, "3kW", got.TechnicalSpecs["power"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProductRepository(conn)

	mock.ExpectExec(`INSERT INTO products`).WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &model.ProductEntity{
		Code:      "AQ-100",
		Cost:      decimal.NewFromInt(10),
		SaleValue: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
