package product

import (
	"context"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	productrepo "github.com/muhammadheryan/heating-backoffice/repository/product"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductApp interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error)
	List(ctx context.Context) ([]*model.ProductResponse, error)
	Get(ctx context.Context, id string) (*model.ProductResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type ProductAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &ProductAppImpl{
		productRepo: productRepo,
	}
}

func (s *ProductAppImpl) Create(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error) {
	if req.Cost.IsNegative() || req.SaleValue.IsNegative() {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "cost and saleValue must not be negative")
	}

	if err := s.ensureCodeFree(ctx, "[CreateProduct]", req.Code); err != nil {
		return nil, err
	}

	entity := &model.ProductEntity{
		Code:                req.Code,
		Description:         req.Description,
		ProposalDescription: req.ProposalDescription,
		Segment:             req.Segment,
		Category1:           req.Category1,
		Category2:           req.Category2,
		TechnicalSpecs:      req.TechnicalSpecs,
		Cost:                req.Cost,
		SaleValue:           req.SaleValue,
		Status:              req.Status,
	}
	if entity.Status == "" {
		entity.Status = constant.StatusActive
	}

	entity, err := s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewProductResponse(entity), nil
}

func (s *ProductAppImpl) List(ctx context.Context) ([]*model.ProductResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, model.NewProductResponse(&products[i]))
	}
	return res, nil
}

func (s *ProductAppImpl) Get(ctx context.Context, id string) (*model.ProductResponse, error) {
	product, err := s.findProduct(ctx, "[GetProduct]", id)
	if err != nil {
		return nil, err
	}
	return model.NewProductResponse(product), nil
}

func (s *ProductAppImpl) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.ProductResponse, error) {
	if isNegative(req.Cost) || isNegative(req.SaleValue) {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "cost and saleValue must not be negative")
	}

	product, err := s.findProduct(ctx, "[UpdateProduct]", id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != product.Code {
		if err := s.ensureCodeFree(ctx, "[UpdateProduct]", *req.Code); err != nil {
			return nil, err
		}
		product.Code = *req.Code
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ProposalDescription != nil {
		product.ProposalDescription = *req.ProposalDescription
	}
	if req.Segment != nil {
		product.Segment = *req.Segment
	}
	if req.Category1 != nil {
		product.Category1 = *req.Category1
	}
	if req.Category2 != nil {
		product.Category2 = *req.Category2
	}
	if req.TechnicalSpecs != nil {
		product.TechnicalSpecs = req.TechnicalSpecs
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.SaleValue != nil {
		product.SaleValue = *req.SaleValue
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewProductResponse(product), nil
}

func (s *ProductAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findProduct(ctx, "[DeleteProduct]", id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *ProductAppImpl) findProduct(ctx context.Context, op, id string) (*model.ProductEntity, error) {
	product, err := s.productRepo.Get(ctx, &model.ProductFilter{ID: id})
	if err != nil {
		logger.Error(op+" err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "product not found")
	}
	return product, nil
}

func (s *ProductAppImpl) ensureCodeFree(ctx context.Context, op, code string) error {
	existing, err := s.productRepo.Get(ctx, &model.ProductFilter{Code: code})
	if err != nil {
		logger.Error(op+" err productRepo.Get code", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomErrorMessage(constant.ErrConflict, "product code already exists")
	}
	return nil
}

func isNegative(v *decimal.Decimal) bool {
	return v != nil && v.IsNegative()
}
