package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the JWT payload issued on login.
type Claims struct {
	Email string            `json:"email"`
	Role  constant.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	user, err := s.Create(ctx, &model.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     constant.UserRoleUser,
	})
	if err != nil {
		return nil, err
	}

	return s.Login(ctx, &model.LoginRequest{Email: user.Email, Password: req.Password})
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "invalid credentials")
	}

	if !user.IsActive {
		return nil, errors.SetCustomError(constant.ErrInactiveUser)
	}

	token, jti, err := s.generateJWT(&user.UserEntity)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err redisRepo.SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		AccessToken: token,
		User:        model.NewUserResponse(user),
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		logger.Error("[ValidateToken] err redisRepo.GetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if sessionUserID == "" || sessionUserID != claims.Subject {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "session expired")
	}

	return &model.Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err redisRepo.DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID string) (*model.UserResponse, error) {
	return s.Get(ctx, userID)
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	return s.Update(ctx, userID, &model.UpdateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
}

func (s *UserAppImpl) UpdatePassword(ctx context.Context, userID string, req *model.UpdatePasswordRequest) error {
	user, err := s.findUser(ctx, "[UpdatePassword]", userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidPassword, "current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[UpdatePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Update(ctx, &user.UserEntity); err != nil {
		logger.Error("[UpdatePassword] err userRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "invalid token")
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "invalid token")
	}
	return claims, nil
}

// generateJWT creates a signed token and returns it with its jti.
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
