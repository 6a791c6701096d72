package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appappointment "github.com/muhammadheryan/heating-backoffice/application/appointment"
	"github.com/muhammadheryan/heating-backoffice/constant"
	appointmentmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/appointment"
	usermocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/user"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sellers(ids ...string) []model.UserDetail {
	res := make([]model.UserDetail, 0, len(ids))
	for _, id := range ids {
		res = append(res, model.UserDetail{UserEntity: model.UserEntity{ID: id, Role: constant.UserRoleSeller, IsActive: true}})
	}
	return res
}

func busyWith(ids ...string) []model.AppointmentDetail {
	res := make([]model.AppointmentDetail, 0, len(ids))
	for _, id := range ids {
		id := id
		res = append(res, model.AppointmentDetail{AppointmentEntity: model.AppointmentEntity{SellerID: &id}})
	}
	return res
}

func activeSellersOf(storeID string) interface{} {
	return mock.MatchedBy(func(f *model.UserFilter) bool {
		return f.StoreID == storeID && f.Role == constant.UserRoleSeller && f.IsActive != nil && *f.IsActive
	})
}

func TestSellerResolver_Resolve(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mockCall func(u *usermocks.UserRepository, a *appointmentmocks.AppointmentRepository)
		want     *string
		outcome  string
		wantErr  bool
	}{
		{
			name: "first free seller in storage order",
			mockCall: func(u *usermocks.UserRepository, a *appointmentmocks.AppointmentRepository) {
				u.On("List", mock.Anything, activeSellersOf("store-1")).Return(sellers("s-1", "s-2", "s-3"), nil).Once()
				a.On("List", mock.Anything, mock.MatchedBy(func(f *model.AppointmentFilter) bool {
					return f.Date != nil && f.Date.Equal(date) && f.Time == "10:00" && len(f.SellerIDs) == 3
				})).Return(busyWith("s-1"), nil).Once()
			},
			want:    strPtr("s-2"),
			outcome: "available",
		},
		{
			name: "every seller busy falls back to the first",
			mockCall: func(u *usermocks.UserRepository, a *appointmentmocks.AppointmentRepository) {
				u.On("List", mock.Anything, activeSellersOf("store-1")).Return(sellers("s-1", "s-2"), nil).Once()
				a.On("List", mock.Anything, mock.Anything).Return(busyWith("s-2", "s-1"), nil).Once()
			},
			want:    strPtr("s-1"),
			outcome: "fallback",
		},
		{
			name: "no active seller leaves the slot unassigned",
			mockCall: func(u *usermocks.UserRepository, a *appointmentmocks.AppointmentRepository) {
				u.On("List", mock.Anything, activeSellersOf("store-1")).Return([]model.UserDetail{}, nil).Once()
			},
			want:    nil,
			outcome: "none",
		},
		{
			name: "repository failure",
			mockCall: func(u *usermocks.UserRepository, a *appointmentmocks.AppointmentRepository) {
				u.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	m := metrics.Registry("test")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			appointmentRepo := appointmentmocks.NewAppointmentRepository(t)
			tt.mockCall(userRepo, appointmentRepo)

			var before float64
			if tt.outcome != "" {
				before = testutil.ToFloat64(m.AutoAssigned.WithLabelValues(tt.outcome))
			}

			got, err := appappointment.NewSellerResolver(userRepo, appointmentRepo, m).
				Resolve(context.Background(), "store-1", date, "10:00")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, before+1, testutil.ToFloat64(m.AutoAssigned.WithLabelValues(tt.outcome)))
		})
	}
}

func TestSellerResolver_NilMetrics(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	appointmentRepo := appointmentmocks.NewAppointmentRepository(t)
	userRepo.On("List", mock.Anything, mock.Anything).Return(sellers("s-1"), nil).Once()
	appointmentRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil).Once()

	got, err := appappointment.NewSellerResolver(userRepo, appointmentRepo, nil).
		Resolve(context.Background(), "store-1", time.Now(), "09:30")
	require.NoError(t, err)
	assert.Equal(t, strPtr("s-1"), got)
}
