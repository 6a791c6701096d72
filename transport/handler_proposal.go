package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
	utilsContext "github.com/muhammadheryan/heating-backoffice/utils/context"
)

// CreateProposal handler
// @Summary Create proposal
// @Description Creates a draft proposal owned by the caller
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProposalRequest true "Proposal Request"
// @Success 201 {object} model.ProposalResponse
// @Failure 400 {object} errorResponse
// @Router /proposals [post]
func (s *RestHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProposalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	callerID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.ProposalApp.Create(r.Context(), &req, callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListProposals handler
// @Summary List proposals
// @Description Admins and managers see every proposal, other roles only their own
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProposalResponse
// @Router /proposals [get]
func (s *RestHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var owner string
	if role, _ := utilsContext.GetUserRole(ctx); !role.HasFullVisibility() {
		owner, _ = utilsContext.GetUserID(ctx)
	}

	res, err := s.ProposalApp.List(ctx, owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProposal handler
// @Summary Get proposal by id
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} model.ProposalResponse
// @Failure 404 {object} errorResponse
// @Router /proposals/{id} [get]
func (s *RestHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProposalApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProposal handler
// @Summary Update proposal
// @Description Patches client fields; data keys are merged into the stored document
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body model.UpdateProposalRequest true "Proposal Request"
// @Success 200 {object} model.ProposalResponse
// @Failure 404 {object} errorResponse
// @Router /proposals/{id} [patch]
func (s *RestHandler) UpdateProposal(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProposalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProposalApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProposal handler
// @Summary Delete proposal
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /proposals/{id} [delete]
func (s *RestHandler) DeleteProposal(w http.ResponseWriter, r *http.Request) {
	if err := s.ProposalApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// CloseProposal handler
// @Summary Close proposal
// @Description Approves a proposal that is linked to an existing appointment
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} model.ProposalResponse
// @Failure 400 {object} errorResponse
// @Router /proposals/{id}/close [patch]
func (s *RestHandler) CloseProposal(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProposalApp.Close(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelProposal handler
// @Summary Cancel proposal
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} model.ProposalResponse
// @Failure 400 {object} errorResponse
// @Router /proposals/{id}/cancel [patch]
func (s *RestHandler) CancelProposal(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProposalApp.Cancel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
