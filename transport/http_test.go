package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/heating-backoffice/constant"
	appointmentMock "github.com/muhammadheryan/heating-backoffice/mocks/application/appointment"
	categoryMock "github.com/muhammadheryan/heating-backoffice/mocks/application/category"
	cityMock "github.com/muhammadheryan/heating-backoffice/mocks/application/city"
	dashboardMock "github.com/muhammadheryan/heating-backoffice/mocks/application/dashboard"
	productMock "github.com/muhammadheryan/heating-backoffice/mocks/application/product"
	proposalMock "github.com/muhammadheryan/heating-backoffice/mocks/application/proposal"
	storeMock "github.com/muhammadheryan/heating-backoffice/mocks/application/store"
	userMock "github.com/muhammadheryan/heating-backoffice/mocks/application/user"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "token-123"
	testStoreID  = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
	testClientID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

type fields struct {
	UserApp        *userMock.UserApp
	StoreApp       *storeMock.StoreApp
	CategoryApp    *categoryMock.CategoryApp
	ProductApp     *productMock.ProductApp
	CityApp        *cityMock.CityApp
	AppointmentApp *appointmentMock.AppointmentApp
	ProposalApp    *proposalMock.ProposalApp
	DashboardApp   *dashboardMock.DashboardApp
}

func newFields(t *testing.T) fields {
	return fields{
		UserApp:        userMock.NewUserApp(t),
		StoreApp:       storeMock.NewStoreApp(t),
		CategoryApp:    categoryMock.NewCategoryApp(t),
		ProductApp:     productMock.NewProductApp(t),
		CityApp:        cityMock.NewCityApp(t),
		AppointmentApp: appointmentMock.NewAppointmentApp(t),
		ProposalApp:    proposalMock.NewProposalApp(t),
		DashboardApp:   dashboardMock.NewDashboardApp(t),
	}
}

func (f fields) handler() http.Handler {
	return NewTransport(&RestHandler{
		UserApp:        f.UserApp,
		StoreApp:       f.StoreApp,
		CategoryApp:    f.CategoryApp,
		ProductApp:     f.ProductApp,
		CityApp:        f.CityApp,
		AppointmentApp: f.AppointmentApp,
		ProposalApp:    f.ProposalApp,
		DashboardApp:   f.DashboardApp,
	}, nil)
}

func asCaller(f fields, userID string, role constant.UserRole) {
	f.UserApp.On("ValidateToken", mock.Anything, testToken).
		Return(&model.Identity{UserID: userID, Role: role}, nil)
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestRestHandler(t *testing.T) {
	type args struct {
		method string
		path   string
		body   string
		token  string
	}

	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "health is public",
			args:       args{method: http.MethodGet, path: "/healthz"},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:       "missing token",
			args:       args{method: http.MethodGet, path: "/api/stores"},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name: "expired session",
			args: args{method: http.MethodGet, path: "/api/stores", token: testToken},
			mockCall: func(f fields) {
				f.UserApp.On("ValidateToken", mock.Anything, testToken).
					Return(nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "session expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name: "login",
			args: args{method: http.MethodPost, path: "/api/auth/login", body: `{"email":"a@b.com","password":"secret"}`},
			mockCall: func(f fields) {
				f.UserApp.On("Login", mock.Anything, &model.LoginRequest{Email: "a@b.com", Password: "secret"}).
					Return(&model.AuthResponse{AccessToken: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:       "login invalid body",
			args:       args{method: http.MethodPost, path: "/api/auth/login", body: `{"email":"not-an-email"}`},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "logout revokes session",
			args: args{method: http.MethodPost, path: "/api/auth/logout", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.UserApp.On("Logout", mock.Anything, testToken).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "users forbidden for seller",
			args: args{method: http.MethodGet, path: "/api/users", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "0007",
		},
		{
			name: "users listed for manager",
			args: args{method: http.MethodGet, path: "/api/users", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleManager)
				f.UserApp.On("List", mock.Anything).Return([]*model.UserResponse{{ID: "u-1"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "seller sees own proposals",
			args: args{method: http.MethodGet, path: "/api/proposals", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.ProposalApp.On("List", mock.Anything, "u-1").Return([]*model.ProposalResponse{}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "admin sees all proposals",
			args: args{method: http.MethodGet, path: "/api/proposals", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleAdmin)
				f.ProposalApp.On("List", mock.Anything, "").Return([]*model.ProposalResponse{}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "create proposal owned by caller",
			args: args{method: http.MethodPost, path: "/api/proposals", body: `{"segment":"piscina"}`, token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.ProposalApp.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CreateProposalRequest) bool {
					return req.Segment == constant.ProposalSegmentPool
				}), "u-1").Return(&model.ProposalResponse{ID: "p-1"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantCode:   "0000",
		},
		{
			name: "close without appointment",
			args: args{method: http.MethodPatch, path: "/api/proposals/p-1/close", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.ProposalApp.On("Close", mock.Anything, "p-1").
					Return(nil, errors.SetCustomErrorMessage(constant.ErrInvalidTransition, "cannot close a proposal without a related appointment"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0008",
		},
		{
			name: "cancel proposal",
			args: args{method: http.MethodPatch, path: "/api/proposals/p-1/cancel", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.ProposalApp.On("Cancel", mock.Anything, "p-1").
					Return(&model.ProposalResponse{ID: "p-1", Status: "cancelled"}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "appointment time must be zero padded",
			args: args{method: http.MethodPost, path: "/api/appointments", token: testToken,
				body: `{"date":"2024-03-20","time":"9:00","storeId":"` + testStoreID + `","clientId":"` + testClientID + `","address":"Rua A"}`},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "appointment patch rejects unpadded time",
			args: args{method: http.MethodPatch, path: "/api/appointments/a-1", token: testToken, body: `{"time":"9:30"}`},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "appointment created with padded time",
			args: args{method: http.MethodPost, path: "/api/appointments", token: testToken,
				body: `{"date":"2024-03-20","time":"09:00","storeId":"` + testStoreID + `","clientId":"` + testClientID + `","address":"Rua A"}`},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.AppointmentApp.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CreateAppointmentRequest) bool {
					return req.Time == "09:00"
				})).Return(&model.AppointmentResponse{ID: "a-1", Time: "09:00"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantCode:   "0000",
		},
		{
			name: "category still in use",
			args: args{method: http.MethodDelete, path: "/api/categories/c-1", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleAdmin)
				f.CategoryApp.On("Delete", mock.Anything, "c-1").
					Return(errors.SetCustomErrorMessage(constant.ErrConflict, "category has 2 associated product(s)"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "0005",
		},
		{
			name: "store not found",
			args: args{method: http.MethodGet, path: "/api/stores/s-1", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleAdmin)
				f.StoreApp.On("Get", mock.Anything, "s-1").Return(nil, errors.SetCustomError(constant.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "0002",
		},
		{
			name: "dashboard stats",
			args: args{method: http.MethodGet, path: "/api/dashboard/stats", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleSeller)
				f.DashboardApp.On("GetStats", mock.Anything).Return(&model.DashboardStats{}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "unexpected error is internal",
			args: args{method: http.MethodGet, path: "/api/cities", token: testToken},
			mockCall: func(f fields) {
				asCaller(f, "u-1", constant.UserRoleAdmin)
				f.CityApp.On("List", mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			req := httptest.NewRequest(tt.args.method, tt.args.path, strings.NewReader(tt.args.body))
			if tt.args.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.args.token)
			}
			rec := httptest.NewRecorder()

			f.handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestIsPublicPath(t *testing.T) {
	assert.True(t, isPublicPath("/api/auth/login"))
	assert.True(t, isPublicPath("/api/auth/register"))
	assert.True(t, isPublicPath("/swagger/index.html"))
	assert.True(t, isPublicPath("/healthz"))
	assert.False(t, isPublicPath("/api/auth/profile"))
	assert.False(t, isPublicPath("/api/proposals"))
}
