package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	appointmentapp "github.com/muhammadheryan/heating-backoffice/application/appointment"
	categoryapp "github.com/muhammadheryan/heating-backoffice/application/category"
	cityapp "github.com/muhammadheryan/heating-backoffice/application/city"
	dashboardapp "github.com/muhammadheryan/heating-backoffice/application/dashboard"
	productapp "github.com/muhammadheryan/heating-backoffice/application/product"
	proposalapp "github.com/muhammadheryan/heating-backoffice/application/proposal"
	storeapp "github.com/muhammadheryan/heating-backoffice/application/store"
	userapp "github.com/muhammadheryan/heating-backoffice/application/user"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	StoreApp       storeapp.StoreApp
	CategoryApp    categoryapp.CategoryApp
	ProductApp     productapp.ProductApp
	CityApp        cityapp.CityApp
	AppointmentApp appointmentapp.AppointmentApp
	ProposalApp    proposalapp.ProposalApp
	DashboardApp   dashboardapp.DashboardApp
}

func NewTransport(rh *RestHandler, m *metrics.Metrics) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/profile", rh.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", rh.UpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/auth/password", rh.UpdatePassword).Methods(http.MethodPatch)

	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("", rh.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", rh.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", rh.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", rh.UpdateUser).Methods(http.MethodPatch)
	users.HandleFunc("/{id}", rh.DeleteUser).Methods(http.MethodDelete)
	users.Use(RoleMiddleware(constant.UserRoleAdmin, constant.UserRoleManager))

	api.HandleFunc("/stores", rh.CreateStore).Methods(http.MethodPost)
	api.HandleFunc("/stores", rh.ListStores).Methods(http.MethodGet)
	api.HandleFunc("/stores/{id}", rh.GetStore).Methods(http.MethodGet)
	api.HandleFunc("/stores/{id}", rh.UpdateStore).Methods(http.MethodPatch)
	api.HandleFunc("/stores/{id}", rh.DeleteStore).Methods(http.MethodDelete)

	api.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", rh.UpdateCategory).Methods(http.MethodPatch)
	api.HandleFunc("/categories/{id}", rh.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPatch)
	api.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/cities", rh.CreateCity).Methods(http.MethodPost)
	api.HandleFunc("/cities", rh.ListCities).Methods(http.MethodGet)
	api.HandleFunc("/cities/{id}", rh.GetCity).Methods(http.MethodGet)
	api.HandleFunc("/cities/{id}", rh.UpdateCity).Methods(http.MethodPatch)
	api.HandleFunc("/cities/{id}", rh.DeleteCity).Methods(http.MethodDelete)

	api.HandleFunc("/appointments", rh.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", rh.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", rh.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", rh.UpdateAppointment).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", rh.DeleteAppointment).Methods(http.MethodDelete)

	api.HandleFunc("/proposals", rh.CreateProposal).Methods(http.MethodPost)
	api.HandleFunc("/proposals", rh.ListProposals).Methods(http.MethodGet)
	api.HandleFunc("/proposals/{id}", rh.GetProposal).Methods(http.MethodGet)
	api.HandleFunc("/proposals/{id}", rh.UpdateProposal).Methods(http.MethodPatch)
	api.HandleFunc("/proposals/{id}", rh.DeleteProposal).Methods(http.MethodDelete)
	api.HandleFunc("/proposals/{id}/close", rh.CloseProposal).Methods(http.MethodPatch)
	api.HandleFunc("/proposals/{id}/cancel", rh.CancelProposal).Methods(http.MethodPatch)

	api.HandleFunc("/dashboard/stats", rh.DashboardStats).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, healthResponse{Status: "ok"})
}
