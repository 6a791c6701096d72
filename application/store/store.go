package store

import (
	"context"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	storerepo "github.com/muhammadheryan/heating-backoffice/repository/store"
	userrepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

type StoreApp interface {
	Create(ctx context.Context, req *model.CreateStoreRequest) (*model.StoreResponse, error)
	List(ctx context.Context) ([]*model.StoreResponse, error)
	Get(ctx context.Context, id string) (*model.StoreResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateStoreRequest) (*model.StoreResponse, error)
	Delete(ctx context.Context, id string) error
}

type StoreAppImpl struct {
	storeRepo storerepo.StoreRepository
	userRepo  userrepo.UserRepository
}

func NewStoreApp(storeRepo storerepo.StoreRepository, userRepo userrepo.UserRepository) StoreApp {
	return &StoreAppImpl{
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

// productsCount is reported for compatibility; products are not linked to stores.
const productsCount = 0

func (s *StoreAppImpl) Create(ctx context.Context, req *model.CreateStoreRequest) (*model.StoreResponse, error) {
	if err := s.ensureNameFree(ctx, "[CreateStore]", req.Name); err != nil {
		return nil, err
	}

	managerName, err := s.lookupManager(ctx, "[CreateStore]", req.ManagerID)
	if err != nil {
		return nil, err
	}

	entity := &model.StoreEntity{
		Name:         req.Name,
		City:         req.City,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Email:        req.Email,
		OpeningHours: req.OpeningHours,
		ManagerID:    emptyToNil(req.ManagerID),
		Status:       req.Status,
	}
	if entity.Status == "" {
		entity.Status = constant.StatusActive
	}

	entity, err = s.storeRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateStore] err storeRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewStoreResponse(&model.StoreDetail{StoreEntity: *entity, ManagerName: managerName}, productsCount), nil
}

func (s *StoreAppImpl) List(ctx context.Context) ([]*model.StoreResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		logger.Error("[ListStores] err storeRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.StoreResponse, 0, len(stores))
	for i := range stores {
		res = append(res, model.NewStoreResponse(&stores[i], productsCount))
	}
	return res, nil
}

func (s *StoreAppImpl) Get(ctx context.Context, id string) (*model.StoreResponse, error) {
	store, err := s.findStore(ctx, "[GetStore]", id)
	if err != nil {
		return nil, err
	}
	return model.NewStoreResponse(store, productsCount), nil
}

func (s *StoreAppImpl) Update(ctx context.Context, id string, req *model.UpdateStoreRequest) (*model.StoreResponse, error) {
	store, err := s.findStore(ctx, "[UpdateStore]", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != store.Name {
		if err := s.ensureNameFree(ctx, "[UpdateStore]", *req.Name); err != nil {
			return nil, err
		}
		store.Name = *req.Name
	}

	if req.ManagerID != nil {
		managerID := emptyToNil(req.ManagerID)
		if managerID != nil && (store.ManagerID == nil || *store.ManagerID != *managerID) {
			managerName, err := s.lookupManager(ctx, "[UpdateStore]", managerID)
			if err != nil {
				return nil, err
			}
			store.ManagerName = managerName
		}
		if managerID == nil {
			store.ManagerName = nil
		}
		store.ManagerID = managerID
	}

	if req.City != nil {
		store.City = *req.City
	}
	if req.Street != nil {
		store.Street = *req.Street
	}
	if req.Number != nil {
		store.Number = *req.Number
	}
	if req.Complement != nil {
		store.Complement = emptyToNil(req.Complement)
	}
	if req.Neighborhood != nil {
		store.Neighborhood = *req.Neighborhood
	}
	if req.ZipCode != nil {
		store.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Email != nil {
		store.Email = *req.Email
	}
	if req.OpeningHours != nil {
		store.OpeningHours = *req.OpeningHours
	}
	if req.Status != nil {
		store.Status = *req.Status
	}

	if err := s.storeRepo.Update(ctx, &store.StoreEntity); err != nil {
		logger.Error("[UpdateStore] err storeRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewStoreResponse(store, productsCount), nil
}

func (s *StoreAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findStore(ctx, "[DeleteStore]", id); err != nil {
		return err
	}

	if err := s.storeRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteStore] err storeRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *StoreAppImpl) findStore(ctx context.Context, op, id string) (*model.StoreDetail, error) {
	store, err := s.storeRepo.Get(ctx, &model.StoreFilter{ID: id})
	if err != nil {
		logger.Error(op+" err storeRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "store not found")
	}
	return store, nil
}

func (s *StoreAppImpl) ensureNameFree(ctx context.Context, op, name string) error {
	existing, err := s.storeRepo.Get(ctx, &model.StoreFilter{Name: name})
	if err != nil {
		logger.Error(op+" err storeRepo.Get name", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomErrorMessage(constant.ErrConflict, "store name already exists")
	}
	return nil
}

func (s *StoreAppImpl) lookupManager(ctx context.Context, op string, managerID *string) (*string, error) {
	if managerID == nil || *managerID == "" {
		return nil, nil
	}
	manager, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *managerID})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if manager == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "manager not found")
	}
	return &manager.Name, nil
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
