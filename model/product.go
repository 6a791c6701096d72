package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/shopspring/decimal"
)

type ProductEntity struct {
	ID                  string                `db:"id"`
	Code                string                `db:"code"`
	Description         string                `db:"description"`
	ProposalDescription string                `db:"proposal_description"`
	Segment             constant.Segment      `db:"segment"`
	Category1           string                `db:"category_1"`
	Category2           string                `db:"category_2"`
	TechnicalSpecs      JSONDoc               `db:"technical_specs"`
	Cost                decimal.Decimal       `db:"cost"`
	SaleValue           decimal.Decimal       `db:"sale_value"`
	Status              constant.RecordStatus `db:"status"`
	CreatedAt           time.Time             `db:"created_at"`
	UpdatedAt           time.Time             `db:"updated_at"`
}

type ProductFilter struct {
	ID   string
	Code string
}

type CreateProductRequest struct {
	Code                string                `json:"code" validate:"required"`
	Description         string                `json:"description" validate:"required"`
	ProposalDescription string                `json:"proposalDescription" validate:"required"`
	Segment             constant.Segment      `json:"segment" validate:"required,oneof=Residencial Comercial"`
	Category1           string                `json:"category1" validate:"required"`
	Category2           string                `json:"category2" validate:"required"`
	TechnicalSpecs      JSONDoc               `json:"technicalSpecs"`
	Cost                decimal.Decimal       `json:"cost"`
	SaleValue           decimal.Decimal       `json:"saleValue"`
	Status              constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateProductRequest struct {
	Code                *string                `json:"code" validate:"omitempty,min=1"`
	Description         *string                `json:"description" validate:"omitempty,min=1"`
	ProposalDescription *string                `json:"proposalDescription" validate:"omitempty,min=1"`
	Segment             *constant.Segment      `json:"segment" validate:"omitempty,oneof=Residencial Comercial"`
	Category1           *string                `json:"category1" validate:"omitempty,min=1"`
	Category2           *string                `json:"category2" validate:"omitempty,min=1"`
	TechnicalSpecs      JSONDoc                `json:"technicalSpecs"`
	Cost                *decimal.Decimal       `json:"cost"`
	SaleValue           *decimal.Decimal       `json:"saleValue"`
	Status              *constant.RecordStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ProductResponse struct {
	ID                  string                `json:"id"`
	Code                string                `json:"code"`
	Description         string                `json:"description"`
	ProposalDescription string                `json:"proposalDescription"`
	Segment             constant.Segment      `json:"segment"`
	Category1           string                `json:"category1"`
	Category2           string                `json:"category2"`
	TechnicalSpecs      JSONDoc               `json:"technicalSpecs,omitempty"`
	Cost                decimal.Decimal       `json:"cost"`
	SaleValue           decimal.Decimal       `json:"saleValue"`
	Status              constant.RecordStatus `json:"status"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
}

func NewProductResponse(p *ProductEntity) *ProductResponse {
	return &ProductResponse{
		ID:                  p.ID,
		Code:                p.Code,
		Description:         p.Description,
		ProposalDescription: p.ProposalDescription,
		Segment:             p.Segment,
		Category1:           p.Category1,
		Category2:           p.Category2,
		TechnicalSpecs:      p.TechnicalSpecs,
		Cost:                p.Cost,
		SaleValue:           p.SaleValue,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
