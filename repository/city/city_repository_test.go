package city

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

func TestReplaceMonthlyDataInTx(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCityRepository(conn)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE cities SET name = \?, latitude = \?, updated_at = \? WHERE id = \?`).
		WithArgs("Curitiba", -25.4, sqlmock.AnyArg(), "city-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM city_monthly_data WHERE city_id = \?`).
		WithArgs("city-1").
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec(`INSERT INTO city_monthly_data \(id,city_id,month,temperature,solar_radiation,wind_speed,month_index\) VALUES \(\?,\?,\?,\?,\?,\?,\?\),\(\?,\?,\?,\?,\?,\?,\?\)`).
		WithArgs(sqlmock.AnyArg(), "city-1", constant.MonthJanuary, 22.5, 5.1, 3.0, 1,
			sqlmock.AnyArg(), "city-1", constant.MonthJuly, 12.0, 3.2, 4.0, 7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTx(ctx, tx, &model.CityEntity{ID: "city-1", Name: "Curitiba", Latitude: -25.4}))
	require.NoError(t, repo.DeleteMonthlyDataTx(ctx, tx, "city-1"))
	rows := []model.CityMonthlyDataEntity{
		{CityID: "city-1", Month: constant.MonthJanuary, Temperature: 22.5, SolarRadiation: 5.1, WindSpeed: 3.0},
		{CityID: "city-1", Month: constant.MonthJuly, Temperature: 12.0, SolarRadiation: 3.2, WindSpeed: 4.0},
	}
	require.NoError(t, repo.InsertMonthlyDataTx(ctx, tx, rows))
	require.NoError(t, tx.Commit())

	assert.NotEmpty(t, rows[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertMonthlyDataTx_Empty(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCityRepository(conn)
	mock.ExpectBegin()

	tx, err := conn.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, repo.InsertMonthlyDataTx(context.Background(), tx, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMonthlyData(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCityRepository(conn)

	got, err := repo.ListMonthlyData(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	mock.ExpectQuery(`SELECT (.+) FROM city_monthly_data WHERE city_id IN \(\?,\?\) ORDER BY city_id, month_index`).
		WithArgs("city-1", "city-2").
		WillReturnRows(sqlmock.NewRows(monthlyColumns).
			AddRow("m-1", "city-1", "Janeiro", 22.5, 5.1, 3.0))

	got, err = repo.ListMonthlyData(context.Background(), []string{"city-1", "city-2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, constant.MonthJanuary, got[0].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ByName(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCityRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT (.+) FROM cities WHERE name = \? LIMIT 1`).
		WithArgs("Curitiba").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("city-1", "Curitiba", -25.4, now, now))

	got, err := repo.Get(context.Background(), &model.CityFilter{Name: "Curitiba"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "city-1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
