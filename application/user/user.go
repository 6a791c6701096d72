package user

import (
	"context"

	"github.com/muhammadheryan/heating-backoffice/cmd/config"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	redisrepo "github.com/muhammadheryan/heating-backoffice/repository/redis"
	storerepo "github.com/muhammadheryan/heating-backoffice/repository/store"
	userrepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
	Logout(ctx context.Context, tokenString string) error
	GetProfile(ctx context.Context, userID string) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserResponse, error)
	UpdatePassword(ctx context.Context, userID string, req *model.UpdatePasswordRequest) error

	Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserResponse, error)
	List(ctx context.Context) ([]*model.UserResponse, error)
	Get(ctx context.Context, id string) (*model.UserResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	storeRepo storerepo.StoreRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, storeRepo storerepo.StoreRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		storeRepo: storeRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserResponse, error) {
	if err := s.ensureEmailFree(ctx, "[CreateUser]", req.Email, ""); err != nil {
		return nil, err
	}

	storeName, err := s.lookupStore(ctx, "[CreateUser]", req.StoreID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.UserEntity{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		Type:         req.Type,
		StoreID:      emptyToNil(req.StoreID),
		IsActive:     true,
	}
	if entity.Role == "" {
		entity.Role = constant.UserRoleUser
	}
	if entity.Type == "" {
		entity.Type = constant.UserTypeUser
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	entity, err = s.userRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewUserResponse(&model.UserDetail{UserEntity: *entity, StoreName: storeName}), nil
}

func (s *UserAppImpl) List(ctx context.Context) ([]*model.UserResponse, error) {
	users, err := s.userRepo.List(ctx, &model.UserFilter{})
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, model.NewUserResponse(&users[i]))
	}
	return res, nil
}

func (s *UserAppImpl) Get(ctx context.Context, id string) (*model.UserResponse, error) {
	user, err := s.findUser(ctx, "[GetUser]", id)
	if err != nil {
		return nil, err
	}
	return model.NewUserResponse(user), nil
}

func (s *UserAppImpl) Update(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	user, err := s.findUser(ctx, "[UpdateUser]", id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailFree(ctx, "[UpdateUser]", *req.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.StoreID != nil && !samePtr(emptyToNil(req.StoreID), user.StoreID) {
		storeName, err := s.lookupStore(ctx, "[UpdateUser]", req.StoreID)
		if err != nil {
			return nil, err
		}
		user.StoreID = emptyToNil(req.StoreID)
		user.StoreName = storeName
	}

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = string(hashedPassword)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = emptyToNil(req.Phone)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Type != nil {
		user.Type = *req.Type
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, &user.UserEntity); err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewUserResponse(user), nil
}

func (s *UserAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findUser(ctx, "[DeleteUser]", id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) findUser(ctx context.Context, op, id string) (*model.UserDetail, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "user not found")
	}
	return user, nil
}

// ensureEmailFree fails with a conflict when email belongs to a user other than selfID.
func (s *UserAppImpl) ensureEmailFree(ctx context.Context, op, email, selfID string) error {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error(op+" err userRepo.Get email", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && existing.ID != selfID {
		return errors.SetCustomErrorMessage(constant.ErrConflict, "email already registered")
	}
	return nil
}

// lookupStore returns the store name for a non-empty store id, or NotFound.
func (s *UserAppImpl) lookupStore(ctx context.Context, op string, storeID *string) (*string, error) {
	if storeID == nil || *storeID == "" {
		return nil, nil
	}
	store, err := s.storeRepo.Get(ctx, &model.StoreFilter{ID: *storeID})
	if err != nil {
		logger.Error(op+" err storeRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "store not found")
	}
	return &store.Name, nil
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
