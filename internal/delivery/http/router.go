package http

import (
	"net/http"

	"medical-records-backend/internal/delivery/http/handler"
	"medical-records-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authorHandler    *handler.AuthorHandler
	patientHandler   *handler.PatientHandler
	diagnosisHandler *handler.DiagnosisHandler
	userHandler      *handler.UserHandler
	authHandler      *handler.AuthHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authorHandler *handler.AuthorHandler,
	patientHandler *handler.PatientHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authorHandler:    authorHandler,
		patientHandler:   patientHandler,
		diagnosisHandler: diagnosisHandler,
		userHandler:      userHandler,
		authHandler:      authHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Authors
	r.router.HandleFunc("/authors", r.authorHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/authors", r.authorHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/authors/{id:[0-9]+}", r.authorHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/authors/{id:[0-9]+}", r.authorHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/authors/{id:[0-9]+}", r.authorHandler.Delete).Methods(http.MethodDelete)

	// Patient creation is the only endpoint behind the auth gate
	patientsProtected := r.router.PathPrefix("/patients").Subrouter()
	patientsProtected.Use(r.authMiddleware.Authenticate)
	patientsProtected.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)

	r.router.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.PartialUpdate).Methods(http.MethodPatch)
	r.router.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Diagnosis routes keep the source API's trailing slash
	diagnosis := r.router.PathPrefix("/diagnosis").Subrouter()
	diagnosis.HandleFunc("/", r.diagnosisHandler.Create).Methods(http.MethodPost)
	diagnosis.HandleFunc("/", r.diagnosisHandler.List).Methods(http.MethodGet)
	diagnosis.HandleFunc("/patient/{id:[0-9]+}", r.diagnosisHandler.ListByPatient).Methods(http.MethodGet)

	// Users
	users := r.router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/search", r.userHandler.SearchPatients).Methods(http.MethodGet)
	users.HandleFunc("/{doctor_id:[0-9]+}/patients", r.userHandler.GetPatientsByDoctor).Methods(http.MethodGet)
	users.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
