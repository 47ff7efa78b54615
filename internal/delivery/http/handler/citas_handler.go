package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"odontoagenda/internal/delivery/dto"
	"odontoagenda/internal/domain/entity"
	"odontoagenda/internal/usecase"
	"odontoagenda/internal/view"
	"odontoagenda/pkg/response"
	"odontoagenda/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CitasHandler struct {
	log       *logrus.Logger
	agenda    usecase.AgendaUsecase
	renderer  *view.Renderer
	validator *validator.CustomValidator
	ahora     func() time.Time
}

func NewCitasHandler(log *logrus.Logger, agenda usecase.AgendaUsecase, renderer *view.Renderer, now func() time.Time) *CitasHandler {
	if now == nil {
		now = time.Now
	}
	return &CitasHandler{
		log:       log,
		agenda:    agenda,
		renderer:  renderer,
		validator: validator.NewValidator(),
		ahora:     now,
	}
}

// Pagina renders the full appointments page: counters, filtered list and the
// day timeline for today. Counters always come from the unfiltered list.
func (h *CitasHandler) Pagina(w http.ResponseWriter, r *http.Request) {
	citas, err := h.agenda.List(r.Context())
	if err != nil {
		h.log.Warnf("Failed to list citas: %+v", err)
		writeBackendError(w, err)
		return
	}

	ahora := h.ahora()
	datos := view.PaginaCitas{
		Contadores: view.CalcularContadores(citas, ahora),
		Citas:      h.filtrar(citas, r),
		Agenda:     view.ArmarAgendaDia(citas, entity.FechaDe(ahora)),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "pagina_citas", datos); err != nil {
		h.log.Errorf("Failed to render citas page: %+v", err)
	}
}

// ListaFragment re-renders only the table, applying the q and estado filters.
func (h *CitasHandler) ListaFragment(w http.ResponseWriter, r *http.Request) {
	citas, err := h.agenda.List(r.Context())
	if err != nil {
		h.log.Warnf("Failed to list citas: %+v", err)
		writeBackendError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "tabla_citas", view.PaginaCitas{Citas: h.filtrar(citas, r)}); err != nil {
		h.log.Errorf("Failed to render citas table: %+v", err)
	}
}

// AgendaFragment re-renders the day timeline. The fecha query parameter
// selects the day; absent or malformed values fall back to today.
func (h *CitasHandler) AgendaFragment(w http.ResponseWriter, r *http.Request) {
	dia := entity.FechaDe(h.ahora())
	if param := r.URL.Query().Get("fecha"); param != "" {
		if parsed, err := entity.ParseFecha(param); err == nil {
			dia = parsed
		}
	}

	citas, err := h.agenda.List(r.Context())
	if err != nil {
		h.log.Warnf("Failed to list citas: %+v", err)
		writeBackendError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "agenda_dia", view.ArmarAgendaDia(citas, dia)); err != nil {
		h.log.Errorf("Failed to render agenda: %+v", err)
	}
}

// Contadores exposes the dashboard counters as JSON for polling refresh.
func (h *CitasHandler) Contadores(w http.ResponseWriter, r *http.Request) {
	citas, err := h.agenda.List(r.Context())
	if err != nil {
		h.log.Warnf("Failed to list citas: %+v", err)
		writeBackendError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", view.CalcularContadores(citas, h.ahora()))
}

// Detalle returns the view-details panel of one appointment.
func (h *CitasHandler) Detalle(w http.ResponseWriter, r *http.Request) {
	id, err := citaID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador de cita inválido", nil)
		return
	}

	detalle, err := h.agenda.Detalle(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCitaNotFound) {
			response.NotFound(w, "La cita no existe")
			return
		}
		h.log.Warnf("Failed to fetch cita %d: %+v", id, err)
		writeBackendError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", detalle)
}

// CambiarEstado applies a status change. Cancellations must carry a reason.
func (h *CitasHandler) CambiarEstado(w http.ResponseWriter, r *http.Request) {
	id, err := citaID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador de cita inválido", nil)
		return
	}

	request := new(dto.CambioEstadoRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(request); err != nil {
		response.ValidationError(w, "Estado de cita inválido", h.validator.FormatValidationErrors(err))
		return
	}

	cita, err := h.agenda.CambiarEstado(r.Context(), id, entity.EstadoCita(request.Estado), request.MotivoCancelacion)
	if err != nil {
		if errors.Is(err, usecase.ErrMotivoRequerido) {
			response.ValidationError(w, "Debe indicar el motivo de la cancelación", nil)
			return
		}
		var estadoErr *usecase.ErrEstadoInvalido
		if errors.As(err, &estadoErr) {
			response.Error(w, http.StatusBadRequest, "Estado de cita inválido", nil)
			return
		}
		h.log.Warnf("Failed to change estado of cita %d: %+v", id, err)
		writeBackendError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Estado actualizado exitosamente", cita)
}

// Eliminar removes an appointment and sends the user back to the list.
func (h *CitasHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := citaID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador de cita inválido", nil)
		return
	}

	if err := h.agenda.Eliminar(r.Context(), id); err != nil {
		h.log.Warnf("Failed to delete cita %d: %+v", id, err)
		writeBackendError(w, err)
		return
	}

	http.Redirect(w, r, "/citas", http.StatusSeeOther)
}

func (h *CitasHandler) filtrar(citas []entity.Cita, r *http.Request) []entity.Cita {
	q := r.URL.Query().Get("q")
	estado := entity.EstadoCita(r.URL.Query().Get("estado"))
	return view.FiltrarCitas(citas, q, estado)
}

func citaID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
