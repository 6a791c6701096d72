package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appappointment "github.com/muhammadheryan/heating-backoffice/application/appointment"
	"github.com/muhammadheryan/heating-backoffice/constant"
	appointmentmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/appointment"
	storemocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/store"
	usermocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/user"
	"github.com/muhammadheryan/heating-backoffice/model"
	cerr "github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	appointmentRepo *appointmentmocks.AppointmentRepository
	storeRepo       *storemocks.StoreRepository
	userRepo        *usermocks.UserRepository
}

func newFields(t *testing.T) fields {
	return fields{
		appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
		storeRepo:       storemocks.NewStoreRepository(t),
		userRepo:        usermocks.NewUserRepository(t),
	}
}

func (f fields) app() appappointment.AppointmentApp {
	resolver := appappointment.NewSellerResolver(f.userRepo, f.appointmentRepo, nil)
	return appappointment.NewAppointmentApp(f.appointmentRepo, f.storeRepo, f.userRepo, resolver)
}

func strPtr(s string) *string { return &s }

func assertCustomError(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

// expectRefs registers the store and client lookups every create performs.
func expectRefs(f fields) {
	f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{ID: "store-1"}).
		Return(&model.StoreDetail{StoreEntity: model.StoreEntity{ID: "store-1"}}, nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "client-1"}).
		Return(&model.UserDetail{UserEntity: model.UserEntity{ID: "client-1"}}, nil).Once()
}

func expectReload(f fields, sellerID *string) {
	f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).
		Return(&model.AppointmentDetail{
			AppointmentEntity: model.AppointmentEntity{
				ID:       "appt-1",
				Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				Time:     "10:00",
				StoreID:  "store-1",
				SellerID: sellerID,
				ClientID: "client-1",
				Status:   constant.AppointmentStatusScheduled,
				Channel:  constant.AppointmentChannelPresencial,
				Duration: 60,
			},
			StoreName: strPtr("Loja Porto"),
		}, nil).Once()
}

func baseRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		Date:     "2024-06-10",
		Time:     "10:00",
		StoreID:  "store-1",
		ClientID: "client-1",
		Address:  "Rua das Flores 12",
	}
}

func TestAppointmentApp_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        func() *model.CreateAppointmentRequest
		mockCall   func(f fields)
		wantSeller *string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: defaults applied and no seller without autoAssign",
			req:  baseRequest,
			mockCall: func(f fields) {
				expectRefs(f)
				f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.Duration == constant.DefaultAppointmentDuration &&
						ent.Status == constant.AppointmentStatusScheduled &&
						ent.Channel == constant.AppointmentChannelPresencial &&
						ent.SellerID == nil
				})).Return(&model.AppointmentEntity{ID: "appt-1"}, nil).Once()
				expectReload(f, nil)
			},
			wantSeller: nil,
		},
		{
			name: "success: autoAssign picks a free seller",
			req: func() *model.CreateAppointmentRequest {
				r := baseRequest()
				r.AutoAssign = true
				return r
			},
			mockCall: func(f fields) {
				expectRefs(f)
				f.userRepo.On("List", mock.Anything, mock.Anything).Return(sellers("s-1", "s-2"), nil).Once()
				f.appointmentRepo.On("List", mock.Anything, mock.Anything).Return(busyWith("s-1"), nil).Once()
				f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.SellerID != nil && *ent.SellerID == "s-2" && ent.AutoAssign
				})).Return(&model.AppointmentEntity{ID: "appt-1"}, nil).Once()
				expectReload(f, strPtr("s-2"))
			},
			wantSeller: strPtr("s-2"),
		},
		{
			name: "success: explicit seller wins over autoAssign",
			req: func() *model.CreateAppointmentRequest {
				r := baseRequest()
				r.AutoAssign = true
				r.SellerID = strPtr("s-9")
				return r
			},
			mockCall: func(f fields) {
				expectRefs(f)
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "s-9"}).
					Return(&model.UserDetail{UserEntity: model.UserEntity{ID: "s-9"}}, nil).Once()
				f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.SellerID != nil && *ent.SellerID == "s-9"
				})).Return(&model.AppointmentEntity{ID: "appt-1"}, nil).Once()
				expectReload(f, strPtr("s-9"))
			},
			wantSeller: strPtr("s-9"),
		},
		{
			name: "error: malformed date",
			req: func() *model.CreateAppointmentRequest {
				r := baseRequest()
				r.Date = "10/06/2024"
				return r
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: store not found",
			req:  baseRequest,
			mockCall: func(f fields) {
				f.storeRepo.On("Get", mock.Anything, &model.StoreFilter{ID: "store-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: client not found",
			req:  baseRequest,
			mockCall: func(f fields) {
				f.storeRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.StoreDetail{StoreEntity: model.StoreEntity{ID: "store-1"}}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "client-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Create(context.Background(), tt.req())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}

			if got.Date != "2024-06-10" {
				t.Fatalf("Create() date = %s", got.Date)
			}
			if (got.SellerID == nil) != (tt.wantSeller == nil) ||
				(got.SellerID != nil && *got.SellerID != *tt.wantSeller) {
				t.Fatalf("Create() sellerId = %v, want %v", got.SellerID, tt.wantSeller)
			}
		})
	}
}

func TestAppointmentApp_Update(t *testing.T) {
	stored := func(sellerID *string) *model.AppointmentDetail {
		return &model.AppointmentDetail{AppointmentEntity: model.AppointmentEntity{
			ID:       "appt-1",
			Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Time:     "10:00",
			StoreID:  "store-1",
			SellerID: sellerID,
			ClientID: "client-1",
		}}
	}
	on := true
	completed := constant.AppointmentStatusCompleted

	tests := []struct {
		name     string
		req      *model.UpdateAppointmentRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "status only keeps seller and skips resolution",
			req:  &model.UpdateAppointmentRequest{Status: &completed},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(stored(nil), nil).Once()
				f.appointmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.Status == constant.AppointmentStatusCompleted && ent.SellerID == nil
				})).Return(nil).Once()
				expectReload(f, nil)
			},
		},
		{
			name: "turning autoAssign on without seller resolves one",
			req:  &model.UpdateAppointmentRequest{AutoAssign: &on},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(stored(nil), nil).Once()
				f.userRepo.On("List", mock.Anything, mock.Anything).Return(sellers("s-1"), nil).Once()
				f.appointmentRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.appointmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.SellerID != nil && *ent.SellerID == "s-1"
				})).Return(nil).Once()
				expectReload(f, strPtr("s-1"))
			},
		},
		{
			name: "turning autoAssign on with a stored seller keeps it",
			req:  &model.UpdateAppointmentRequest{AutoAssign: &on},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(stored(strPtr("s-7")), nil).Once()
				f.appointmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
					return ent.SellerID != nil && *ent.SellerID == "s-7"
				})).Return(nil).Once()
				expectReload(f, strPtr("s-7"))
			},
		},
		{
			name: "error: unknown seller",
			req:  &model.UpdateAppointmentRequest{SellerID: strPtr("s-404")},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(stored(nil), nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "s-404"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: appointment not found",
			req:  &model.UpdateAppointmentRequest{Status: &completed},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := f.app().Update(context.Background(), "appt-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
			}
		})
	}
}

func TestAppointmentApp_Delete(t *testing.T) {
	f := newFields(t)
	f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).Return(nil, nil).Once()

	err := f.app().Delete(context.Background(), "appt-1")
	assertCustomError(t, err, constant.ErrNotFound)
}
