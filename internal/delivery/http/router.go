package http

import (
	"net/http"

	"odontoagenda/internal/delivery/http/handler"
	"odontoagenda/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	citasHandler       *handler.CitasHandler
	bookingFormHandler *handler.BookingFormHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	citasHandler *handler.CitasHandler,
	bookingFormHandler *handler.BookingFormHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		citasHandler:       citasHandler,
		bookingFormHandler: bookingFormHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointments page and fragments
	citas := r.router.PathPrefix("/citas").Subrouter()
	citas.HandleFunc("", r.citasHandler.Pagina).Methods(http.MethodGet)
	citas.HandleFunc("/fragment/lista", r.citasHandler.ListaFragment).Methods(http.MethodGet)
	citas.HandleFunc("/fragment/agenda", r.citasHandler.AgendaFragment).Methods(http.MethodGet)
	citas.HandleFunc("/contadores", r.citasHandler.Contadores).Methods(http.MethodGet)

	// Booking form
	citas.HandleFunc("/nueva", r.bookingFormHandler.AbrirCrear).Methods(http.MethodGet)
	citas.HandleFunc("/guardar", r.bookingFormHandler.Guardar).Methods(http.MethodPost)
	citas.HandleFunc("/cerrar", r.bookingFormHandler.Cerrar).Methods(http.MethodPost)
	citas.HandleFunc("/{id:[0-9]+}/editar", r.bookingFormHandler.AbrirEditar).Methods(http.MethodGet)

	// Single appointment actions
	citas.HandleFunc("/{id:[0-9]+}", r.citasHandler.Detalle).Methods(http.MethodGet)
	citas.HandleFunc("/{id:[0-9]+}/estado", r.citasHandler.CambiarEstado).Methods(http.MethodPost)
	citas.HandleFunc("/{id:[0-9]+}/eliminar", r.citasHandler.Eliminar).Methods(http.MethodPost)

	r.router.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/citas", http.StatusFound)
	}).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
