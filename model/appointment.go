package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

type AppointmentEntity struct {
	ID         string                      `db:"id"`
	Date       time.Time                   `db:"date"`
	Time       string                      `db:"time"`
	StoreID    string                      `db:"store_id"`
	SellerID   *string                     `db:"seller_id"`
	ClientID   string                      `db:"client_id"`
	Address    string                      `db:"address"`
	Duration   int                         `db:"duration"`
	Status     constant.AppointmentStatus  `db:"status"`
	Channel    constant.AppointmentChannel `db:"channel"`
	AutoAssign bool                        `db:"auto_assign"`
	CreatedAt  time.Time                   `db:"created_at"`
	UpdatedAt  time.Time                   `db:"updated_at"`
}

// AppointmentDetail is an appointment joined with store, seller and client display names.
type AppointmentDetail struct {
	AppointmentEntity
	StoreName  *string `db:"store_name"`
	SellerName *string `db:"seller_name"`
	ClientName *string `db:"client_name"`
}

// AppointmentFilter narrows appointment lookups. Zero values are ignored.
type AppointmentFilter struct {
	ID        string
	Date      *time.Time
	DateFrom  *time.Time
	Time      string
	SellerID  string
	SellerIDs []string
	Status    constant.AppointmentStatus
	Limit     uint64
}

type CreateAppointmentRequest struct {
	Date       string                      `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string                      `json:"time" validate:"required,len=5,datetime=15:04"`
	StoreID    string                      `json:"storeId" validate:"required,uuid"`
	SellerID   *string                     `json:"sellerId" validate:"omitempty,uuid"`
	ClientID   string                      `json:"clientId" validate:"required,uuid"`
	Address    string                      `json:"address" validate:"required"`
	Duration   *int                        `json:"duration" validate:"omitempty,min=15"`
	Status     constant.AppointmentStatus  `json:"status" validate:"omitempty,oneof=scheduled pending completed cancelled"`
	Channel    constant.AppointmentChannel `json:"channel" validate:"omitempty,oneof=google presencial"`
	AutoAssign bool                        `json:"autoAssign"`
}

type UpdateAppointmentRequest struct {
	Date       *string                      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       *string                      `json:"time" validate:"omitempty,len=5,datetime=15:04"`
	StoreID    *string                      `json:"storeId" validate:"omitempty,uuid"`
	SellerID   *string                      `json:"sellerId" validate:"omitempty,uuid"`
	ClientID   *string                      `json:"clientId" validate:"omitempty,uuid"`
	Address    *string                      `json:"address" validate:"omitempty,min=1"`
	Duration   *int                         `json:"duration" validate:"omitempty,min=15"`
	Status     *constant.AppointmentStatus  `json:"status" validate:"omitempty,oneof=scheduled pending completed cancelled"`
	Channel    *constant.AppointmentChannel `json:"channel" validate:"omitempty,oneof=google presencial"`
	AutoAssign *bool                        `json:"autoAssign"`
}

type AppointmentResponse struct {
	ID         string                      `json:"id"`
	Date       string                      `json:"date"`
	Time       string                      `json:"time"`
	StoreID    string                      `json:"storeId"`
	StoreName  *string                     `json:"storeName,omitempty"`
	SellerID   *string                     `json:"sellerId,omitempty"`
	SellerName *string                     `json:"sellerName,omitempty"`
	ClientID   string                      `json:"clientId"`
	ClientName *string                     `json:"clientName,omitempty"`
	Address    string                      `json:"address"`
	Duration   int                         `json:"duration"`
	Status     constant.AppointmentStatus  `json:"status"`
	Channel    constant.AppointmentChannel `json:"channel"`
	AutoAssign bool                        `json:"autoAssign"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

func NewAppointmentResponse(a *AppointmentDetail) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		Date:       a.Date.Format(constant.AppointmentDateLayout),
		Time:       a.Time,
		StoreID:    a.StoreID,
		StoreName:  a.StoreName,
		SellerID:   a.SellerID,
		SellerName: a.SellerName,
		ClientID:   a.ClientID,
		ClientName: a.ClientName,
		Address:    a.Address,
		Duration:   a.Duration,
		Status:     a.Status,
		Channel:    a.Channel,
		AutoAssign: a.AutoAssign,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
