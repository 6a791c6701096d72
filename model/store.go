package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

type StoreEntity struct {
	ID           string                `db:"id"`
	Name         string                `db:"name"`
	City         string                `db:"city"`
	Street       string                `db:"street"`
	Number       string                `db:"number"`
	Complement   *string               `db:"complement"`
	Neighborhood string                `db:"neighborhood"`
	ZipCode      string                `db:"zip_code"`
	Phone        string                `db:"phone"`
	Email        string                `db:"email"`
	OpeningHours string                `db:"opening_hours"`
	ManagerID    *string               `db:"manager_id"`
	Status       constant.RecordStatus `db:"status"`
	CreatedAt    time.Time             `db:"created_at"`
	UpdatedAt    time.Time             `db:"updated_at"`
}

// StoreDetail is a store joined with its manager name.
type StoreDetail struct {
	StoreEntity
	ManagerName *string `db:"manager_name"`
}

type StoreFilter struct {
	ID   string
	Name string
}

type CreateStoreRequest struct {
	Name         string                `json:"name" validate:"required"`
	City         string                `json:"city" validate:"required"`
	Street       string                `json:"street" validate:"required"`
	Number       string                `json:"number" validate:"required"`
	Complement   *string               `json:"complement"`
	Neighborhood string                `json:"neighborhood" validate:"required"`
	ZipCode      string                `json:"zipCode" validate:"required"`
	Phone        string                `json:"phone" validate:"required"`
	Email        string                `json:"email" validate:"required,email"`
	OpeningHours string                `json:"openingHours" validate:"required"`
	ManagerID    *string               `json:"managerId" validate:"omitempty,uuid"`
	Status       constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateStoreRequest struct {
	Name         *string                `json:"name" validate:"omitempty,min=1"`
	City         *string                `json:"city" validate:"omitempty,min=1"`
	Street       *string                `json:"street" validate:"omitempty,min=1"`
	Number       *string                `json:"number" validate:"omitempty,min=1"`
	Complement   *string                `json:"complement"`
	Neighborhood *string                `json:"neighborhood" validate:"omitempty,min=1"`
	ZipCode      *string                `json:"zipCode" validate:"omitempty,min=1"`
	Phone        *string                `json:"phone" validate:"omitempty,min=1"`
	Email        *string                `json:"email" validate:"omitempty,email"`
	OpeningHours *string                `json:"openingHours" validate:"omitempty,min=1"`
	ManagerID    *string                `json:"managerId" validate:"omitempty,uuid"`
	Status       *constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type StoreResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	City          string                `json:"city"`
	Street        string                `json:"street"`
	Number        string                `json:"number"`
	Complement    *string               `json:"complement,omitempty"`
	Neighborhood  string                `json:"neighborhood"`
	ZipCode       string                `json:"zipCode"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	OpeningHours  string                `json:"openingHours"`
	ManagerID     *string               `json:"managerId,omitempty"`
	ManagerName   *string               `json:"managerName,omitempty"`
	Status        constant.RecordStatus `json:"status"`
	ProductsCount int64                 `json:"productsCount"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func NewStoreResponse(s *StoreDetail, productsCount int64) *StoreResponse {
	return &StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		City:          s.City,
		Street:        s.Street,
		Number:        s.Number,
		Complement:    s.Complement,
		Neighborhood:  s.Neighborhood,
		ZipCode:       s.ZipCode,
		Phone:         s.Phone,
		Email:         s.Email,
		OpeningHours:  s.OpeningHours,
		ManagerID:     s.ManagerID,
		ManagerName:   s.ManagerName,
		Status:        s.Status,
		ProductsCount: productsCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
