package proposal_test

import (
	"context"
	"errors"
	"testing"

	appproposal "github.com/muhammadheryan/heating-backoffice/application/proposal"
	"github.com/muhammadheryan/heating-backoffice/constant"
	appointmentmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/appointment"
	proposalmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/proposal"
	"github.com/muhammadheryan/heating-backoffice/model"
	cerr "github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	proposalRepo    *proposalmocks.ProposalRepository
	appointmentRepo *appointmentmocks.AppointmentRepository
}

func newFields(t *testing.T) fields {
	return fields{
		proposalRepo:    proposalmocks.NewProposalRepository(t),
		appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
	}
}

func (f fields) app() appproposal.ProposalApp {
	return appproposal.NewProposalApp(f.proposalRepo, f.appointmentRepo)
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

func echoUpdate(f fields) {
	f.proposalRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
}

func TestProposalApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateProposalRequest
		callerID string
		check    func(ent *model.ProposalEntity) bool
	}{
		{
			name:     "draft owned by caller with empty document",
			req:      &model.CreateProposalRequest{Segment: constant.ProposalSegmentPool},
			callerID: "user-1",
			check: func(ent *model.ProposalEntity) bool {
				return ent.Status == constant.ProposalStatusDraft &&
					ent.UserID != nil && *ent.UserID == "user-1" &&
					ent.Data != nil && len(ent.Data) == 0
			},
		},
		{
			name: "client snapshot keeps only non-empty fields",
			req: &model.CreateProposalRequest{
				Segment: constant.ProposalSegmentResidential,
				Client:  &model.ProposalClient{Name: "Joana", IsNew: func() *bool { b := true; return &b }()},
				Data:    model.JSONDoc{"area": 120.0},
			},
			check: func(ent *model.ProposalEntity) bool {
				return ent.UserID == nil &&
					ent.ClientID == nil && ent.ClientPhone == nil &&
					ent.ClientName != nil && *ent.ClientName == "Joana" &&
					ent.IsNewClient &&
					ent.Data["area"] == 120.0
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.proposalRepo.On("Create", mock.Anything, mock.MatchedBy(tt.check)).
				Return(func(_ context.Context, ent *model.ProposalEntity) *model.ProposalEntity {
					ent.ID = "prop-1"
					return ent
				}, nil).Once()

			got, err := f.app().Create(context.Background(), tt.req, tt.callerID)
			assert.NoError(t, err)
			assert.Equal(t, "prop-1", got.ID)
			assert.Equal(t, constant.ProposalStatusDraft, got.Status)
		})
	}
}

func TestProposalApp_List(t *testing.T) {
	f := newFields(t)
	f.proposalRepo.On("List", mock.Anything, &model.ProposalFilter{UserID: "user-1"}).
		Return([]model.ProposalEntity{{ID: "prop-1"}, {ID: "prop-2"}}, nil).Once()

	got, err := f.app().List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProposalApp_Update(t *testing.T) {
	stored := func() *model.ProposalEntity {
		return &model.ProposalEntity{
			ID:         "prop-1",
			ClientName: strPtr("Joana"),
			Data:       model.JSONDoc{"area": 120.0, "pool": "exterior"},
			Status:     constant.ProposalStatusDraft,
		}
	}

	tests := []struct {
		name     string
		req      *model.UpdateProposalRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.ProposalResponse)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "data keys merge over the stored document",
			req:  &model.UpdateProposalRequest{Data: model.JSONDoc{"area": 150.0, "cover": true}},
			mockCall: func(f fields) {
				f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).Return(stored(), nil).Once()
				echoUpdate(f)
			},
			check: func(t *testing.T, got *model.ProposalResponse) {
				assert.Equal(t, model.JSONDoc{"area": 150.0, "pool": "exterior", "cover": true}, got.Data)
			},
		},
		{
			name: "empty client name keeps stored value",
			req:  &model.UpdateProposalRequest{Client: &model.ProposalClient{Name: "", Phone: "+351910000000"}},
			mockCall: func(f fields) {
				f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).Return(stored(), nil).Once()
				echoUpdate(f)
			},
			check: func(t *testing.T, got *model.ProposalResponse) {
				assert.Equal(t, strPtr("Joana"), got.ClientName)
				assert.Equal(t, strPtr("+351910000000"), got.ClientPhone)
			},
		},
		{
			name: "status is overwritten without transition checks",
			req:  &model.UpdateProposalRequest{Status: strPtr(constant.ProposalStatusCompleted)},
			mockCall: func(f fields) {
				f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).Return(stored(), nil).Once()
				echoUpdate(f)
			},
			check: func(t *testing.T, got *model.ProposalResponse) {
				assert.Equal(t, constant.ProposalStatusCompleted, got.Status)
			},
		},
		{
			name: "error: linked appointment missing",
			req:  &model.UpdateProposalRequest{AppointmentID: strPtr("appt-404")},
			mockCall: func(f fields) {
				f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).Return(stored(), nil).Once()
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-404"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Update(context.Background(), "prop-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestProposalApp_Close(t *testing.T) {
	tests := []struct {
		name       string
		stored     *model.ProposalEntity
		mockCall   func(f fields)
		wantStatus string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:   "approves when the appointment exists",
			stored: &model.ProposalEntity{ID: "prop-1", AppointmentID: strPtr("appt-1"), Status: constant.ProposalStatusDraft},
			mockCall: func(f fields) {
				f.appointmentRepo.On("Get", mock.Anything, &model.AppointmentFilter{ID: "appt-1"}).
					Return(&model.AppointmentDetail{AppointmentEntity: model.AppointmentEntity{ID: "appt-1"}}, nil).Once()
				f.proposalRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.ProposalEntity) bool {
					return ent.Status == constant.ProposalStatusApproved
				})).Return(nil).Once()
			},
			wantStatus: constant.ProposalStatusApproved,
		},
		{
			name:     "error: no related appointment",
			stored:   &model.ProposalEntity{ID: "prop-1", Status: constant.ProposalStatusDraft},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidTransition,
		},
		{
			name:   "error: related appointment deleted",
			stored: &model.ProposalEntity{ID: "prop-1", AppointmentID: strPtr("appt-1")},
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
			f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).Return(tt.stored, nil).Once()
			tt.mockCall(f)

			got, err := f.app().Close(context.Background(), "prop-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Close() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestProposalApp_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "draft can be cancelled", status: constant.ProposalStatusDraft},
		{name: "approved can be cancelled", status: constant.ProposalStatusApproved},
		{name: "error: already cancelled", status: constant.ProposalStatusCancelled, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.proposalRepo.On("Get", mock.Anything, &model.ProposalFilter{ID: "prop-1"}).
				Return(&model.ProposalEntity{ID: "prop-1", Status: tt.status}, nil).Once()
			if !tt.wantErr {
				echoUpdate(f)
			}

			got, err := f.app().Cancel(context.Background(), "prop-1")
			if tt.wantErr {
				assertCustomError(t, err, constant.ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, constant.ProposalStatusCancelled, got.Status)
		})
	}
}
