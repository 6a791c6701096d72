package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateStore handler
// @Summary Create store
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateStoreRequest true "Store Request"
// @Success 201 {object} model.StoreResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /stores [post]
func (s *RestHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StoreApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListStores handler
// @Summary List stores
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StoreResponse
// @Router /stores [get]
func (s *RestHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	res, err := s.StoreApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStore handler
// @Summary Get store by id
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} model.StoreResponse
// @Failure 404 {object} errorResponse
// @Router /stores/{id} [get]
func (s *RestHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	res, err := s.StoreApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateStore handler
// @Summary Update store
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body model.UpdateStoreRequest true "Store Request"
// @Success 200 {object} model.StoreResponse
// @Failure 404 {object} errorResponse
// @Router /stores/{id} [patch]
func (s *RestHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StoreApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteStore handler
// @Summary Delete store
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /stores/{id} [delete]
func (s *RestHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	if err := s.StoreApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
