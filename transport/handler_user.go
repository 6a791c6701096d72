package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateUser handler
// @Summary Create user
// @Description Admin and manager only
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateUserRequest true "User Request"
// @Success 201 {object} model.UserResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Router /users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} errorResponse
// @Router /users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateUserRequest true "User Request"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} errorResponse
// @Router /users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
