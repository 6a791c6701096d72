package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/model"
)

// CreateAppointment handler
// @Summary Create appointment
// @Description Schedules a visit; with autoAssign and no sellerId a free seller of the store is picked
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} model.AppointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /appointments [post]
func (s *RestHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAppointmentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AppointmentApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListAppointments handler
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AppointmentResponse
// @Router /appointments [get]
func (s *RestHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	res, err := s.AppointmentApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAppointment handler
// @Summary Get appointment by id
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} model.AppointmentResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{id} [get]
func (s *RestHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	res, err := s.AppointmentApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAppointment handler
// @Summary Update appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body model.UpdateAppointmentRequest true "Appointment Request"
// @Success 200 {object} model.AppointmentResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{id} [patch]
func (s *RestHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAppointmentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AppointmentApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAppointment handler
// @Summary Delete appointment
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{id} [delete]
func (s *RestHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := s.AppointmentApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
