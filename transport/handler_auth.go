package transport

import (
	"net/http"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	utilsContext "github.com/muhammadheryan/heating-backoffice/utils/context"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
)

// Register handler
// @Summary Register user
// @Description Register a new account and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the session bound to the current token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} successResponse
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetProfile handler
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Router /auth/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update current user profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile Request"
// @Success 200 {object} model.UserResponse
// @Failure 409 {object} errorResponse
// @Router /auth/profile [patch]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdatePassword handler
// @Summary Change current user password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdatePasswordRequest true "Password Request"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /auth/password [patch]
func (s *RestHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdatePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.UpdatePassword(r.Context(), userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
