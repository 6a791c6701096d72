package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           string            `db:"id"`
	Email        string            `db:"email"`
	PasswordHash string            `db:"password"`
	Name         string            `db:"name"`
	Phone        *string           `db:"phone"`
	Role         constant.UserRole `db:"role"`
	Type         constant.UserType `db:"type"`
	StoreID      *string           `db:"store_id"`
	IsActive     bool              `db:"is_active"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
}

// UserDetail is a user joined with its store name.
type UserDetail struct {
	UserEntity
	StoreName *string `db:"store_name"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       string
	Email    string
	StoreID  string
	Role     constant.UserRole
	IsActive *bool
}

type CreateUserRequest struct {
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=6"`
	Name     string            `json:"name" validate:"required"`
	Phone    *string           `json:"phone"`
	Role     constant.UserRole `json:"role" validate:"omitempty,oneof=admin manager seller user"`
	Type     constant.UserType `json:"type" validate:"omitempty,oneof=usuario lead cliente"`
	StoreID  *string           `json:"storeId" validate:"omitempty,uuid"`
	IsActive *bool             `json:"isActive"`
}

type UpdateUserRequest struct {
	Email    *string            `json:"email" validate:"omitempty,email"`
	Password *string            `json:"password" validate:"omitempty,min=6"`
	Name     *string            `json:"name" validate:"omitempty,min=1"`
	Phone    *string            `json:"phone"`
	Role     *constant.UserRole `json:"role" validate:"omitempty,oneof=admin manager seller user"`
	Type     *constant.UserType `json:"type" validate:"omitempty,oneof=usuario lead cliente"`
	StoreID  *string            `json:"storeId" validate:"omitempty,uuid"`
	IsActive *bool              `json:"isActive"`
}

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Phone     *string           `json:"phone,omitempty"`
	Role      constant.UserRole `json:"role"`
	Type      constant.UserType `json:"type"`
	StoreID   *string           `json:"storeId,omitempty"`
	StoreName *string           `json:"storeName,omitempty"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func NewUserResponse(u *UserDetail) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Type:      u.Type,
		StoreID:   u.StoreID,
		StoreName: u.StoreName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// RegisterRequest for self registration
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID string
	Role   constant.UserRole
}
