package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

type ProposalEntity struct {
	ID            string                   `db:"id"`
	Segment       constant.ProposalSegment `db:"segment"`
	UserID        *string                  `db:"user_id"`
	ClientID      *string                  `db:"client_id"`
	ClientName    *string                  `db:"client_name"`
	ClientPhone   *string                  `db:"client_phone"`
	IsNewClient   bool                     `db:"is_new_client"`
	City          *string                  `db:"city"`
	Data          JSONDoc                  `db:"data"`
	Status        string                   `db:"status"`
	AppointmentID *string                  `db:"appointment_id"`
	CreatedAt     time.Time                `db:"created_at"`
	UpdatedAt     time.Time                `db:"updated_at"`
}

// ProposalFilter narrows proposal lookups and counts. From bounds are inclusive, Before bounds exclusive.
type ProposalFilter struct {
	ID            string
	UserID        string
	Statuses      []string
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	UpdatedFrom   *time.Time
	UpdatedBefore *time.Time
}

// ProposalClient is the client snapshot supplied with a proposal.
type ProposalClient struct {
	ID    string `json:"id" validate:"omitempty,uuid"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	IsNew *bool  `json:"isNew"`
}

type CreateProposalRequest struct {
	Segment constant.ProposalSegment `json:"segment" validate:"required,oneof=piscina residencial"`
	Client  *ProposalClient          `json:"client"`
	City    *string                  `json:"city"`
	Data    JSONDoc                  `json:"data"`
}

type UpdateProposalRequest struct {
	Client        *ProposalClient `json:"client"`
	City          *string         `json:"city"`
	Data          JSONDoc         `json:"data"`
	Status        *string         `json:"status"`
	AppointmentID *string         `json:"appointmentId" validate:"omitempty,uuid"`
}

type ProposalResponse struct {
	ID            string                   `json:"id"`
	Segment       constant.ProposalSegment `json:"segment"`
	UserID        *string                  `json:"userId,omitempty"`
	ClientID      *string                  `json:"clientId,omitempty"`
	ClientName    *string                  `json:"clientName,omitempty"`
	ClientPhone   *string                  `json:"clientPhone,omitempty"`
	IsNewClient   bool                     `json:"isNewClient"`
	City          *string                  `json:"city,omitempty"`
	Data          JSONDoc                  `json:"data"`
	Status        string                   `json:"status"`
	AppointmentID *string                  `json:"appointmentId,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

func NewProposalResponse(p *ProposalEntity) *ProposalResponse {
	return &ProposalResponse{
		ID:            p.ID,
		Segment:       p.Segment,
		UserID:        p.UserID,
		ClientID:      p.ClientID,
		ClientName:    p.ClientName,
		ClientPhone:   p.ClientPhone,
		IsNewClient:   p.IsNewClient,
		City:          p.City,
		Data:          p.Data,
		Status:        p.Status,
		AppointmentID: p.AppointmentID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
