package proposal

import (
	"context"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	appointmentrepo "github.com/muhammadheryan/heating-backoffice/repository/appointment"
	proposalrepo "github.com/muhammadheryan/heating-backoffice/repository/proposal"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

type ProposalApp interface {
	// Create stores a draft owned by callerID; an empty callerID leaves the owner unset.
	Create(ctx context.Context, req *model.CreateProposalRequest, callerID string) (*model.ProposalResponse, error)
	// List returns every proposal, or only those owned by callerID when it is not empty.
	List(ctx context.Context, callerID string) ([]*model.ProposalResponse, error)
	Get(ctx context.Context, id string) (*model.ProposalResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateProposalRequest) (*model.ProposalResponse, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context, id string) (*model.ProposalResponse, error)
	Cancel(ctx context.Context, id string) (*model.ProposalResponse, error)
}

type proposalAppImpl struct {
	proposalRepo    proposalrepo.ProposalRepository
	appointmentRepo appointmentrepo.AppointmentRepository
}

func NewProposalApp(proposalRepo proposalrepo.ProposalRepository, appointmentRepo appointmentrepo.AppointmentRepository) ProposalApp {
	return &proposalAppImpl{
		proposalRepo:    proposalRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (s *proposalAppImpl) Create(ctx context.Context, req *model.CreateProposalRequest, callerID string) (*model.ProposalResponse, error) {
	entity := &model.ProposalEntity{
		Segment: req.Segment,
		UserID:  nonEmpty(callerID),
		City:    req.City,
		Data:    req.Data,
		Status:  constant.ProposalStatusDraft,
	}
	if entity.Data == nil {
		entity.Data = model.JSONDoc{}
	}
	if req.Client != nil {
		entity.ClientID = nonEmpty(req.Client.ID)
		entity.ClientName = nonEmpty(req.Client.Name)
		entity.ClientPhone = nonEmpty(req.Client.Phone)
		if req.Client.IsNew != nil {
			entity.IsNewClient = *req.Client.IsNew
		}
	}

	entity, err := s.proposalRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProposal] err proposalRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewProposalResponse(entity), nil
}

func (s *proposalAppImpl) List(ctx context.Context, callerID string) ([]*model.ProposalResponse, error) {
	proposals, err := s.proposalRepo.List(ctx, &model.ProposalFilter{UserID: callerID})
	if err != nil {
		logger.Error("[ListProposals] err proposalRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		res = append(res, model.NewProposalResponse(&proposals[i]))
	}
	return res, nil
}

func (s *proposalAppImpl) Get(ctx context.Context, id string) (*model.ProposalResponse, error) {
	proposal, err := s.findProposal(ctx, "[GetProposal]", id)
	if err != nil {
		return nil, err
	}
	return model.NewProposalResponse(proposal), nil
}

// Update overwrites status without transition checks and merges data into the stored document.
// Client snapshot fields change only when the patch carries a non-empty value.
func (s *proposalAppImpl) Update(ctx context.Context, id string, req *model.UpdateProposalRequest) (*model.ProposalResponse, error) {
	proposal, err := s.findProposal(ctx, "[UpdateProposal]", id)
	if err != nil {
		return nil, err
	}

	if req.AppointmentID != nil {
		appointmentID := nonEmpty(*req.AppointmentID)
		if appointmentID != nil {
			if err := s.ensureAppointment(ctx, "[UpdateProposal]", *appointmentID); err != nil {
				return nil, err
			}
		}
		proposal.AppointmentID = appointmentID
	}

	if req.Client != nil {
		if req.Client.ID != "" {
			proposal.ClientID = &req.Client.ID
		}
		if req.Client.Name != "" {
			proposal.ClientName = &req.Client.Name
		}
		if req.Client.Phone != "" {
			proposal.ClientPhone = &req.Client.Phone
		}
		if req.Client.IsNew != nil {
			proposal.IsNewClient = *req.Client.IsNew
		}
	}
	if req.City != nil {
		proposal.City = req.City
	}
	if req.Data != nil {
		proposal.Data = proposal.Data.Merge(req.Data)
	}
	if req.Status != nil && *req.Status != "" {
		proposal.Status = *req.Status
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		logger.Error("[UpdateProposal] err proposalRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewProposalResponse(proposal), nil
}

func (s *proposalAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findProposal(ctx, "[DeleteProposal]", id); err != nil {
		return err
	}

	if err := s.proposalRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProposal] err proposalRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Close approves a proposal whose related appointment still exists. The appointment is not modified.
func (s *proposalAppImpl) Close(ctx context.Context, id string) (*model.ProposalResponse, error) {
	proposal, err := s.findProposal(ctx, "[CloseProposal]", id)
	if err != nil {
		return nil, err
	}

	if proposal.AppointmentID == nil || *proposal.AppointmentID == "" {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidTransition,
			"cannot close a proposal without a related appointment")
	}
	if err := s.ensureAppointment(ctx, "[CloseProposal]", *proposal.AppointmentID); err != nil {
		return nil, err
	}

	proposal.Status = constant.ProposalStatusApproved
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		logger.Error("[CloseProposal] err proposalRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewProposalResponse(proposal), nil
}

func (s *proposalAppImpl) Cancel(ctx context.Context, id string) (*model.ProposalResponse, error) {
	proposal, err := s.findProposal(ctx, "[CancelProposal]", id)
	if err != nil {
		return nil, err
	}

	if proposal.Status == constant.ProposalStatusCancelled {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidTransition, "proposal already cancelled")
	}

	proposal.Status = constant.ProposalStatusCancelled
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		logger.Error("[CancelProposal] err proposalRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewProposalResponse(proposal), nil
}

func (s *proposalAppImpl) findProposal(ctx context.Context, op, id string) (*model.ProposalEntity, error) {
	proposal, err := s.proposalRepo.Get(ctx, &model.ProposalFilter{ID: id})
	if err != nil {
		logger.Error(op+" err proposalRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if proposal == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "proposal not found")
	}
	return proposal, nil
}

func (s *proposalAppImpl) ensureAppointment(ctx context.Context, op, appointmentID string) error {
	appointment, err := s.appointmentRepo.Get(ctx, &model.AppointmentFilter{ID: appointmentID})
	if err != nil {
		logger.Error(op+" err appointmentRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if appointment == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "appointment not found")
	}
	return nil
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
