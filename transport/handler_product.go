package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProductRequest true "Product Request"
// @Success 201 {object} model.ProductResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProductResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product by id
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.UpdateProductRequest true "Product Request"
// @Success 200 {object} model.ProductResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [patch]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ProductApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
