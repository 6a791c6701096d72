package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "email", "password", "name", "phone", "role", "type",
	"store_id", "is_active", "created_at", "updated_at", "store_name",
}

func TestList_ActiveSellersOfStore(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(conn)
	now := time.Now().UTC().Truncate(time.Microsecond)
	active := true

	rows := sqlmock.NewRows(userColumns).
		AddRow("seller-1", "a@x.com", "hash", "Ana", nil, "seller", "usuario", "store-1", true, now, now, "Loja").
		AddRow("seller-2", "b@x.com", "hash", "Bia", nil, "seller", "usuario", "store-1", true, now, now, "Loja")

	mock.ExpectQuery(`SELECT (.+) FROM users u LEFT JOIN stores s ON s\.id = u\.store_id WHERE u\.store_id = \? AND u\.role = \? AND u\.is_active = \? ORDER BY u\.created_at DESC`).
		WithArgs("store-1", constant.UserRoleSeller, true).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), &model.UserFilter{
		StoreID:  "store-1",
		Role:     constant.UserRoleSeller,
		IsActive: &active,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "seller-1", got[0].ID)
	assert.Equal(t, "Loja", *got[0].StoreName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(conn)

	tests := []struct {
		name    string
		filter  *model.UserFilter
		mock    func()
		wantNil bool
		wantErr bool
	}{
		{
			name:   "found by email",
			filter: &model.UserFilter{Email: "a@x.com"},
			mock: func() {
				now := time.Now().UTC()
				mock.ExpectQuery(`WHERE u\.email = \? LIMIT 1`).
					WithArgs("a@x.com").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow("user-1", "a@x.com", "hash", "Ana", "119", "admin", "usuario", nil, true, now, now, nil))
			},
		},
		{
			name:   "not found",
			filter: &model.UserFilter{ID: "missing"},
			mock: func() {
				mock.ExpectQuery(`WHERE u\.id = \? LIMIT 1`).
					WithArgs("missing").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantNil: true,
		},
		{
			name:   "db error",
			filter: &model.UserFilter{ID: "user-1"},
			mock: func() {
				mock.ExpectQuery(`WHERE u\.id = \? LIMIT 1`).
					WithArgs("user-1").
					WillReturnError(errors.New("connection refused"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := repo.Get(context.Background(), tt.filter)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, got == nil)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	conn, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(conn)

	mock.ExpectExec(`INSERT INTO users \(id,email,password,name,phone,role,type,store_id,is_active,created_at,updated_at\)`).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "hash", "Ana", nil, constant.UserRoleUser, constant.UserTypeUser,
			nil, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{
		Email:        "a@x.com",
		PasswordHash: "hash",
		Name:         "Ana",
		Role:         constant.UserRoleUser,
		Type:         constant.UserTypeUser,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
