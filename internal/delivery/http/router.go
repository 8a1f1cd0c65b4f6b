package http

import (
	"net/http"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	soapNoteHandler    *handler.SOAPNoteHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	soapNoteHandler *handler.SOAPNoteHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		soapNoteHandler:    soapNoteHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires a resolved identity; per-route permission
	// gates mirror the matrix, and usecases re-check plus scope.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// User management
	protected.Handle("/users",
		middleware.RequirePermission(authz.OpReadAllUsers)(http.HandlerFunc(r.userHandler.ListUsers))).
		Methods(http.MethodGet)
	protected.Handle("/doctors",
		middleware.RequirePermission(authz.OpReadDoctors)(http.HandlerFunc(r.userHandler.ListDoctors))).
		Methods(http.MethodGet)

	// Patient records. Listing and reads are role-scoped inside the
	// usecase, so those routes carry no single-operation gate.
	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.Handle("/patients",
		middleware.RequirePermission(authz.OpCreatePatient)(http.HandlerFunc(r.patientHandler.CreatePatient))).
		Methods(http.MethodPost)
	protected.Handle("/patients/{id}/assign-doctor",
		middleware.RequirePermission(authz.OpUpdatePatientStatus)(http.HandlerFunc(r.patientHandler.AssignDoctor))).
		Methods(http.MethodPut)

	// SOAP notes
	protected.Handle("/soap-notes",
		middleware.RequirePermission(authz.OpCreateSOAPNote)(http.HandlerFunc(r.soapNoteHandler.CreateNote))).
		Methods(http.MethodPost)
	protected.Handle("/patients/{id}/soap-notes",
		middleware.RequirePermission(authz.OpReadSOAPNotes)(http.HandlerFunc(r.soapNoteHandler.ListNotes))).
		Methods(http.MethodGet)

	// Appointments
	protected.Handle("/appointments",
		middleware.RequirePermission(authz.OpCreateAppointment)(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).
		Methods(http.MethodPost)
	protected.Handle("/appointments",
		middleware.RequirePermission(authz.OpReadAppointments)(http.HandlerFunc(r.appointmentHandler.ListAppointments))).
		Methods(http.MethodGet)

	// Dashboard
	protected.Handle("/dashboard/stats",
		middleware.RequirePermission(authz.OpReadDashboardStats)(http.HandlerFunc(r.dashboardHandler.GetStats))).
		Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
