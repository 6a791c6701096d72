package transport

import "net/http"

// DashboardStats handler
// @Summary Dashboard statistics
// @Description Monthly KPIs, upcoming appointments and the seller ranking
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /dashboard/stats [get]
func (s *RestHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
