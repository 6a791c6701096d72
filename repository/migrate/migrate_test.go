package migrate

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `-- users
CREATE TABLE a (
    id INT
);

ALTER TABLE a ADD COLUMN b INT;
CREATE TABLE c (id INT)`

	got := SplitStatements(script)
	require.Len(t, got, 3)
	assert.Equal(t, "CREATE TABLE a (\n    id INT\n)", got[0])
	assert.Equal(t, "ALTER TABLE a ADD COLUMN b INT", got[1])
	assert.Equal(t, "CREATE TABLE c (id INT)", got[2])
}

func TestApplyMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "mysql")

	files := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE a (id INT);\n")},
		"002_more.sql":  {Data: []byte("CREATE TABLE b (id INT);\nCREATE TABLE c (id INT);\n")},
		"README.md":     {Data: []byte("ignored")},
		"000_empty.sql": {Data: []byte("")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001_init.sql"))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("000_empty.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE c").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("002_more.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = ApplyMigrations(context.Background(), conn, files)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMigrations_StatementError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "mysql")

	files := fstest.MapFS{"001_init.sql": {Data: []byte("CREATE TABLE a (id INT);")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec("CREATE TABLE a").WillReturnError(assert.AnError)

	err = ApplyMigrations(context.Background(), conn, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
