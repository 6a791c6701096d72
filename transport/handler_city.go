package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateCity handler
// @Summary Create city
// @Tags Cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateCityRequest true "City Request"
// @Success 201 {object} model.CityResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /cities [post]
func (s *RestHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CityApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListCities handler
// @Summary List cities
// @Tags Cities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CityResponse
// @Router /cities [get]
func (s *RestHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	res, err := s.CityApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCity handler
// @Summary Get city by id
// @Tags Cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} model.CityResponse
// @Failure 404 {object} errorResponse
// @Router /cities/{id} [get]
func (s *RestHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	res, err := s.CityApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCity handler
// @Summary Update city
// @Description When monthlyData is present it replaces the stored monthly rows
// @Tags Cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Param request body model.UpdateCityRequest true "City Request"
// @Success 200 {object} model.CityResponse
// @Failure 404 {object} errorResponse
// @Router /cities/{id} [patch]
func (s *RestHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CityApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteCity handler
// @Summary Delete city
// @Tags Cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /cities/{id} [delete]
func (s *RestHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	if err := s.CityApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
