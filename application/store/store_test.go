package store_test

import (
	"context"
	"errors"
	"testing"

	appstore "github.com/muhammadheryan/heating-backoffice/application/store"
	"github.com/muhammadheryan/heating-backoffice/constant"
	storemocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/store"
	usermocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/user"
	"github.com/muhammadheryan/heating-backoffice/model"
	cerr "github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	storeRepo *storemocks.StoreRepository
	userRepo  *usermocks.UserRepository
}

func strPtr(s string) *string { return &s }

func createRequest() *model.CreateStoreRequest {
	return &model.CreateStoreRequest{
		Name:         "Loja Porto",
		City:         "Porto",
		Street:       "Rua das Flores",
		Number:       "12",
		Neighborhood: "Ribeira",
		ZipCode:      "4050-265",
		Phone:        "+351220000000",
		Email:        "porto@example.com",
		OpeningHours: "09:00-18:00",
		ManagerID:    strPtr("user-1"),
	}
}

func TestStoreApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.StoreResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: manager name resolved and status defaulted",
			mockCall: func(f fields) {
				f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{Name: "Loja Porto"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "user-1"}).
					Return(&model.UserDetail{UserEntity: model.UserEntity{ID: "user-1", Name: "Rui"}}, nil).Once()
				f.storeRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.StoreEntity) bool {
					return ent.Status == constant.StatusActive && ent.ManagerID != nil && *ent.ManagerID == "user-1"
				})).Return(func(_ context.Context, ent *model.StoreEntity) *model.StoreEntity {
					ent.ID = "store-1"
					return ent
				}, nil).Once()
			},
			want: &model.StoreResponse{
				ID:           "store-1",
				Name:         "Loja Porto",
				City:         "Porto",
				Street:       "Rua das Flores",
				Number:       "12",
				Neighborhood: "Ribeira",
				ZipCode:      "4050-265",
				Phone:        "+351220000000",
				Email:        "porto@example.com",
				OpeningHours: "09:00-18:00",
				ManagerID:    strPtr("user-1"),
				ManagerName:  strPtr("Rui"),
				Status:       constant.StatusActive,
			},
		},
		{
			name: "error: duplicate name",
			mockCall: func(f fields) {
				f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{Name: "Loja Porto"}).
					Return(&model.StoreDetail{StoreEntity: model.StoreEntity{ID: "store-0"}}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: manager not found",
			mockCall: func(f fields) {
				f.storeRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "user-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{storeRepo: storemocks.NewStoreRepository(t), userRepo: usermocks.NewUserRepository(t)}
			tt.mockCall(f)

			got, err := appstore.NewStoreApp(f.storeRepo, f.userRepo).Create(context.Background(), createRequest())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreApp_Update(t *testing.T) {
	stored := func() *model.StoreDetail {
		return &model.StoreDetail{
			StoreEntity: model.StoreEntity{ID: "store-1", Name: "Loja Porto", ManagerID: strPtr("user-1"), Status: constant.StatusActive},
			ManagerName: strPtr("Rui"),
		}
	}

	t.Run("success: clearing the manager drops the name", func(t *testing.T) {
		f := fields{storeRepo: storemocks.NewStoreRepository(t), userRepo: usermocks.NewUserRepository(t)}
		f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{ID: "store-1"}).Return(stored(), nil).Once()
		f.storeRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.StoreEntity) bool {
			return ent.ManagerID == nil
		})).Return(nil).Once()

		got, err := appstore.NewStoreApp(f.storeRepo, f.userRepo).
			Update(context.Background(), "store-1", &model.UpdateStoreRequest{ManagerID: strPtr("")})
		assert.NoError(t, err)
		assert.Nil(t, got.ManagerID)
		assert.Nil(t, got.ManagerName)
	})

	t.Run("error: rename onto an existing store", func(t *testing.T) {
		f := fields{storeRepo: storemocks.NewStoreRepository(t), userRepo: usermocks.NewUserRepository(t)}
		f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{ID: "store-1"}).Return(stored(), nil).Once()
		f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{Name: "Loja Lisboa"}).
			Return(&model.StoreDetail{StoreEntity: model.StoreEntity{ID: "store-2"}}, nil).Once()

		_, err := appstore.NewStoreApp(f.storeRepo, f.userRepo).
			Update(context.Background(), "store-1", &model.UpdateStoreRequest{Name: strPtr("Loja Lisboa")})
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrConflict], ce.ErrorCode())
	})
}

func TestStoreApp_Delete(t *testing.T) {
	f := fields{storeRepo: storemocks.NewStoreRepository(t), userRepo: usermocks.NewUserRepository(t)}
	f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{ID: "store-1"}).Return(nil, errors.New("db down")).Once()

	err := appstore.NewStoreApp(f.storeRepo, f.userRepo).Delete(context.Background(), "store-1")
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], ce.ErrorCode())
}
