package handler

import (
	"errors"
	"net/http"

	"odontoagenda/internal/usecase"
	"odontoagenda/internal/validation"
	"odontoagenda/internal/view"
	"odontoagenda/pkg/response"

	"github.com/sirupsen/logrus"
)

type BookingFormHandler struct {
	log      *logrus.Logger
	form     usecase.BookingFormUsecase
	renderer *view.Renderer
}

func NewBookingFormHandler(log *logrus.Logger, form usecase.BookingFormUsecase, renderer *view.Renderer) *BookingFormHandler {
	return &BookingFormHandler{log: log, form: form, renderer: renderer}
}

// AbrirCrear opens the booking form in create mode.
func (h *BookingFormHandler) AbrirCrear(w http.ResponseWriter, r *http.Request) {
	formulario, err := h.form.OpenCreate(r.Context())
	if err != nil {
		h.log.Warnf("Failed to open create form: %+v", err)
		h.writeOpenError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "formulario_cita", formulario); err != nil {
		h.log.Errorf("Failed to render booking form: %+v", err)
	}
}

// AbrirEditar opens the booking form prefilled with the targeted appointment.
func (h *BookingFormHandler) AbrirEditar(w http.ResponseWriter, r *http.Request) {
	id, err := citaID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador de cita inválido", nil)
		return
	}

	formulario, err := h.form.OpenEdit(r.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to open edit form for cita %d: %+v", id, err)
		h.writeOpenError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "formulario_cita", formulario); err != nil {
		h.log.Errorf("Failed to render booking form: %+v", err)
	}
}

// Guardar submits the form values. Rule violations come back all at once
// with HTTP 400 and never reach the backend.
func (h *BookingFormHandler) Guardar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	draft := &validation.CitaDraft{
		PacienteID:    r.PostFormValue("pacienteId"),
		TipoCitaID:    r.PostFormValue("tipoCitaId"),
		Fecha:         r.PostFormValue("fechaCita"),
		Hora:          r.PostFormValue("horaCita"),
		OdontologoID:  r.PostFormValue("odontologoId"),
		Observaciones: r.PostFormValue("observaciones"),
	}

	confirmacion, err := h.form.Submit(r.Context(), draft)
	if err != nil {
		var valErr *usecase.ErrValidacion
		switch {
		case errors.As(err, &valErr):
			response.ValidationError(w, "La cita no pudo ser guardada", valErr.Errores)
		case errors.Is(err, usecase.ErrFormularioCerrado):
			response.Error(w, http.StatusConflict, "El formulario no está abierto", nil)
		case errors.Is(err, usecase.ErrEnvioEnCurso):
			response.Error(w, http.StatusConflict, "Ya hay un envío en curso", nil)
		default:
			h.log.Warnf("Failed to save cita: %+v", err)
			writeBackendError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, confirmacion.Mensaje, confirmacion)
}

// Cerrar abandons the form, discarding any entered values.
func (h *BookingFormHandler) Cerrar(w http.ResponseWriter, r *http.Request) {
	h.form.Cancel()
	http.Redirect(w, r, "/citas", http.StatusSeeOther)
}

func (h *BookingFormHandler) writeOpenError(w http.ResponseWriter, err error) {
	var cargaErr *usecase.ErrCargaCita
	if errors.As(err, &cargaErr) && errors.Is(err, usecase.ErrCitaNotFound) {
		response.NotFound(w, "La cita no existe")
		return
	}

	var lookupsErr *usecase.ErrCargaLookups
	if errors.As(err, &lookupsErr) {
		writeBackendError(w, lookupsErr.Err)
		return
	}
	if errors.As(err, &cargaErr) {
		writeBackendError(w, cargaErr.Err)
		return
	}
	response.InternalServerError(w, "")
}
