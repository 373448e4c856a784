package http

import (
	"net/http"

	"healthcare-admin/internal/delivery/http/handler"
	"healthcare-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const entityPattern = "{entity:patients|doctors|appointments}"

type Router struct {
	router             *mux.Router
	proxyHandler       *handler.ProxyHandler
	consoleHandler     *handler.ConsoleHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggerMiddleware   *middleware.RequestLoggerMiddleware
}

// NewRouter assembles the route table. The store handlers are nil in
// proxy mode; the /upstream/v1 surface is only mounted when they exist.
func NewRouter(
	proxyHandler *handler.ProxyHandler,
	consoleHandler *handler.ConsoleHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		proxyHandler:       proxyHandler,
		consoleHandler:     consoleHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
		loggerMiddleware:   loggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Proxy surface: the console's API, forwarded to the record store
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/"+entityPattern, r.proxyHandler.Collection).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/"+entityPattern+"/{id:[0-9]+}", r.proxyHandler.Item).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	// Server-rendered console
	console := r.router.PathPrefix("/console").Subrouter()
	console.HandleFunc("", r.consoleHandler.Index).Methods(http.MethodGet)
	console.HandleFunc("/"+entityPattern, r.consoleHandler.ListPage).Methods(http.MethodGet)
	console.HandleFunc("/"+entityPattern, r.consoleHandler.Create).Methods(http.MethodPost)
	console.HandleFunc("/"+entityPattern+"/new", r.consoleHandler.NewForm).Methods(http.MethodGet)
	console.HandleFunc("/"+entityPattern+"/{id:[0-9]+}/edit", r.consoleHandler.EditForm).Methods(http.MethodGet)
	console.HandleFunc("/"+entityPattern+"/{id:[0-9]+}", r.consoleHandler.Update).Methods(http.MethodPost)
	console.HandleFunc("/"+entityPattern+"/{id:[0-9]+}/delete", r.consoleHandler.ConfirmDelete).Methods(http.MethodGet)
	console.HandleFunc("/"+entityPattern+"/{id:[0-9]+}/delete", r.consoleHandler.Delete).Methods(http.MethodPost)
	r.router.HandleFunc("/", r.consoleHandler.Index).Methods(http.MethodGet)

	// Embedded record store (standalone mode)
	if r.patientHandler != nil {
		store := r.router.PathPrefix("/upstream/v1").Subrouter()

		store.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
		store.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
		store.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
		store.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Update).Methods(http.MethodPut)
		store.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)

		store.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
		store.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
		store.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.Get).Methods(http.MethodGet)
		store.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.Update).Methods(http.MethodPut)
		store.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.Delete).Methods(http.MethodDelete)

		store.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
		store.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
		store.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.Get).Methods(http.MethodGet)
		store.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.Update).Methods(http.MethodPut)
		store.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	}

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
