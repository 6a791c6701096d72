package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

type CategoryEntity struct {
	ID          string                `db:"id"`
	Name        string                `db:"name"`
	Segment     constant.Segment      `db:"segment"`
	Description *string               `db:"description"`
	Status      constant.RecordStatus `db:"status"`
	CreatedAt   time.Time             `db:"created_at"`
	UpdatedAt   time.Time             `db:"updated_at"`
}

type CategoryFilter struct {
	ID      string
	Name    string
	Segment constant.Segment
}

type CreateCategoryRequest struct {
	Name        string                `json:"name" validate:"required"`
	Segment     constant.Segment      `json:"segment" validate:"required,oneof=Residencial Comercial"`
	Description *string               `json:"description"`
	Status      constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCategoryRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=1"`
	Segment     *constant.Segment      `json:"segment" validate:"omitempty,oneof=Residencial Comercial"`
	Description *string                `json:"description"`
	Status      *constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Segment       constant.Segment      `json:"segment"`
	Description   *string               `json:"description,omitempty"`
	Status        constant.RecordStatus `json:"status"`
	ProductsCount int64                 `json:"productsCount"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func NewCategoryResponse(c *CategoryEntity, productsCount int64) *CategoryResponse {
	return &CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Segment:       c.Segment,
		Description:   c.Description,
		Status:        c.Status,
		ProductsCount: productsCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
