package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateCategory handler
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateCategoryRequest true "Category Request"
// @Success 201 {object} model.CategoryResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CategoryResponse
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCategory handler
// @Summary Get category by id
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} model.CategoryResponse
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCategory handler
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body model.UpdateCategoryRequest true "Category Request"
// @Success 200 {object} model.CategoryResponse
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [patch]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteCategory handler
// @Summary Delete category
// @Description Rejected with 409 while products still reference the category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.CategoryApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
