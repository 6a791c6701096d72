package category

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	categoryrepo "github.com/muhammadheryan/heating-backoffice/repository/category"
	productrepo "github.com/muhammadheryan/heating-backoffice/repository/product"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error)
	List(ctx context.Context) ([]*model.CategoryResponse, error)
	Get(ctx context.Context, id string) (*model.CategoryResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type CategoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
	productRepo  productrepo.ProductRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository, productRepo productrepo.ProductRepository) CategoryApp {
	return &CategoryAppImpl{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *CategoryAppImpl) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	if err := s.ensureUnique(ctx, "[CreateCategory]", req.Name, req.Segment); err != nil {
		return nil, err
	}

	entity := &model.CategoryEntity{
		Name:        req.Name,
		Segment:     req.Segment,
		Description: req.Description,
		Status:      req.Status,
	}
	if entity.Status == "" {
		entity.Status = constant.StatusActive
	}

	entity, err := s.categoryRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateCategory] err categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.toResponse(ctx, "[CreateCategory]", entity)
}

func (s *CategoryAppImpl) List(ctx context.Context) ([]*model.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.CategoryResponse, 0, len(categories))
	for i := range categories {
		item, err := s.toResponse(ctx, "[ListCategories]", &categories[i])
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *CategoryAppImpl) Get(ctx context.Context, id string) (*model.CategoryResponse, error) {
	category, err := s.findCategory(ctx, "[GetCategory]", id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, "[GetCategory]", category)
}

func (s *CategoryAppImpl) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	category, err := s.findCategory(ctx, "[UpdateCategory]", id)
	if err != nil {
		return nil, err
	}

	name, segment := category.Name, category.Segment
	if req.Name != nil {
		name = *req.Name
	}
	if req.Segment != nil {
		segment = *req.Segment
	}
	if name != category.Name || segment != category.Segment {
		if err := s.ensureUnique(ctx, "[UpdateCategory]", name, segment); err != nil {
			return nil, err
		}
	}
	category.Name, category.Segment = name, segment

	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Status != nil {
		category.Status = *req.Status
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.Error("[UpdateCategory] err categoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.toResponse(ctx, "[UpdateCategory]", category)
}

// Delete is refused while any product still references the category by name.
func (s *CategoryAppImpl) Delete(ctx context.Context, id string) error {
	category, err := s.findCategory(ctx, "[DeleteCategory]", id)
	if err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, category.Name)
	if err != nil {
		logger.Error("[DeleteCategory] err productRepo.CountByCategory", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return errors.SetCustomErrorMessage(constant.ErrConflict,
			fmt.Sprintf("category has %d associated product(s)", count))
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCategory] err categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CategoryAppImpl) findCategory(ctx context.Context, op, id string) (*model.CategoryEntity, error) {
	category, err := s.categoryRepo.Get(ctx, &model.CategoryFilter{ID: id})
	if err != nil {
		logger.Error(op+" err categoryRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "category not found")
	}
	return category, nil
}

func (s *CategoryAppImpl) ensureUnique(ctx context.Context, op, name string, segment constant.Segment) error {
	existing, err := s.categoryRepo.Get(ctx, &model.CategoryFilter{Name: name, Segment: segment})
	if err != nil {
		logger.Error(op+" err categoryRepo.Get name", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomErrorMessage(constant.ErrConflict, "category already exists in this segment")
	}
	return nil
}

func (s *CategoryAppImpl) toResponse(ctx context.Context, op string, category *model.CategoryEntity) (*model.CategoryResponse, error) {
	count, err := s.productRepo.CountByCategory(ctx, category.Name)
	if err != nil {
		logger.Error(op+" err productRepo.CountByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewCategoryResponse(category, count), nil
}
