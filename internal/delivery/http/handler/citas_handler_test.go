package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"odontoagenda/internal/delivery/dto"
	"odontoagenda/internal/domain/entity"
	"odontoagenda/internal/infrastructure/api"
	"odontoagenda/internal/usecase"
	"odontoagenda/internal/validation"
	"odontoagenda/internal/view"
	"odontoagenda/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAgenda struct {
	listFunc   func(ctx context.Context) ([]entity.Cita, error)
	estadoFunc func(ctx context.Context, id int64, estado entity.EstadoCita, motivo string) (*entity.Cita, error)
	deletes    int
}

func (f *fakeAgenda) List(ctx context.Context) ([]entity.Cita, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeAgenda) Detalle(ctx context.Context, id int64) (*dto.DetalleCita, error) {
	if id == 99 {
		return nil, usecase.ErrCitaNotFound
	}
	return &dto.DetalleCita{ID: id, Paciente: "Ana Pérez"}, nil
}

func (f *fakeAgenda) CambiarEstado(ctx context.Context, id int64, estado entity.EstadoCita, motivo string) (*entity.Cita, error) {
	if f.estadoFunc != nil {
		return f.estadoFunc(ctx, id, estado, motivo)
	}
	if estado == entity.EstadoCancelada && strings.TrimSpace(motivo) == "" {
		return nil, usecase.ErrMotivoRequerido
	}
	return &entity.Cita{ID: id, Estado: estado}, nil
}

func (f *fakeAgenda) Eliminar(ctx context.Context, id int64) error {
	f.deletes++
	return nil
}

type fakeBookingForm struct {
	submitFunc func(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error)
	cancels    int
}

func (f *fakeBookingForm) OpenCreate(ctx context.Context) (*dto.FormularioCita, error) {
	return &dto.FormularioCita{
		Modo:    "crear",
		Titulo:  "Nueva Cita",
		Horas:   []string{"08:00"},
		Valores: &validation.CitaDraft{},
	}, nil
}

func (f *fakeBookingForm) OpenEdit(ctx context.Context, id int64) (*dto.FormularioCita, error) {
	if id == 99 {
		return nil, &usecase.ErrCargaCita{ID: id, Err: usecase.ErrCitaNotFound}
	}
	return &dto.FormularioCita{
		Modo:    "editar",
		Titulo:  "Editar Cita",
		Horas:   []string{"08:00"},
		Valores: &validation.CitaDraft{PacienteID: "5"},
	}, nil
}

func (f *fakeBookingForm) Submit(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error) {
	if f.submitFunc != nil {
		return f.submitFunc(ctx, draft)
	}
	return &dto.ConfirmacionCita{Mensaje: "¡Cita programada exitosamente!"}, nil
}

func (f *fakeBookingForm) Cancel() { f.cancels++ }

func (f *fakeBookingForm) Estado() (usecase.EstadoFormulario, int64) {
	return usecase.FormularioCerrado, 0
}

// Fixed clock: Wednesday 2025-03-05 at 10:00.
func ahoraFija() time.Time {
	return time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
}

func newTestRouter(t *testing.T, agenda usecase.AgendaUsecase, form usecase.BookingFormUsecase) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	router := mux.NewRouter()
	citasHandler := NewCitasHandler(log, agenda, renderer, ahoraFija)
	formHandler := NewBookingFormHandler(log, form, renderer)

	router.HandleFunc("/citas", citasHandler.Pagina).Methods(http.MethodGet)
	router.HandleFunc("/citas/fragment/lista", citasHandler.ListaFragment).Methods(http.MethodGet)
	router.HandleFunc("/citas/fragment/agenda", citasHandler.AgendaFragment).Methods(http.MethodGet)
	router.HandleFunc("/citas/contadores", citasHandler.Contadores).Methods(http.MethodGet)
	router.HandleFunc("/citas/nueva", formHandler.AbrirCrear).Methods(http.MethodGet)
	router.HandleFunc("/citas/guardar", formHandler.Guardar).Methods(http.MethodPost)
	router.HandleFunc("/citas/cerrar", formHandler.Cerrar).Methods(http.MethodPost)
	router.HandleFunc("/citas/{id:[0-9]+}/editar", formHandler.AbrirEditar).Methods(http.MethodGet)
	router.HandleFunc("/citas/{id:[0-9]+}", citasHandler.Detalle).Methods(http.MethodGet)
	router.HandleFunc("/citas/{id:[0-9]+}/estado", citasHandler.CambiarEstado).Methods(http.MethodPost)
	router.HandleFunc("/citas/{id:[0-9]+}/eliminar", citasHandler.Eliminar).Methods(http.MethodPost)

	return router
}

func citaDePrueba() entity.Cita {
	fecha, _ := entity.ParseFecha("2025-03-05")
	hora, _ := entity.ParseHora("09:00")
	return entity.Cita{
		ID:       1,
		Fecha:    fecha,
		Hora:     hora,
		Estado:   entity.EstadoPendiente,
		Paciente: entity.Paciente{Nombre: "Ana", Apellido: "Pérez", Cedula: "1102345678"},
	}
}

func TestPaginaRenders(t *testing.T) {
	agenda := &fakeAgenda{
		listFunc: func(ctx context.Context) ([]entity.Cita, error) {
			return []entity.Cita{citaDePrueba()}, nil
		},
	}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Pérez")
	assert.Contains(t, rec.Body.String(), "Gestión de Citas")
}

func TestPaginaBackendDown(t *testing.T) {
	agenda := &fakeAgenda{
		listFunc: func(ctx context.Context) ([]entity.Cita, error) {
			return nil, &api.ConnectionError{URL: "http://backend/citas"}
		},
	}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Error de conexión con el servidor", body.Message)
}

func TestListaFragmentAppliesFilters(t *testing.T) {
	otra := citaDePrueba()
	otra.ID = 2
	otra.Paciente = entity.Paciente{Nombre: "Luis", Apellido: "Gómez"}
	otra.Estado = entity.EstadoConfirmada

	agenda := &fakeAgenda{
		listFunc: func(ctx context.Context) ([]entity.Cita, error) {
			return []entity.Cita{citaDePrueba(), otra}, nil
		},
	}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/fragment/lista?q=luis", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luis Gómez")
	assert.NotContains(t, rec.Body.String(), "Ana Pérez")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/fragment/lista?estado=CANCELADA", nil))
	assert.Contains(t, rec.Body.String(), "No se encontraron citas")
}

func TestAgendaFragmentDefaultsToToday(t *testing.T) {
	agenda := &fakeAgenda{
		listFunc: func(ctx context.Context) ([]entity.Cita, error) {
			return []entity.Cita{citaDePrueba()}, nil
		},
	}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/fragment/agenda", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "miércoles, 5 de marzo de 2025")
	assert.Contains(t, rec.Body.String(), "Ana Pérez")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/fragment/agenda?fecha=2025-03-06", nil))
	assert.Contains(t, rec.Body.String(), "jueves, 6 de marzo de 2025")
	assert.Contains(t, rec.Body.String(), "No hay citas programadas para este día")
}

func TestContadores(t *testing.T) {
	agenda := &fakeAgenda{
		listFunc: func(ctx context.Context) ([]entity.Cita, error) {
			return []entity.Cita{citaDePrueba()}, nil
		},
	}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/contadores", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    view.Contadores `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Data.Hoy)
	assert.Equal(t, 1, body.Data.Pendientes)
}

func TestDetalleNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuardarSuccess(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	form := strings.NewReader("pacienteId=5&tipoCitaId=2&fechaCita=2025-03-10&horaCita=09:30&odontologoId=3")
	req := httptest.NewRequest(http.MethodPost, "/citas/guardar", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "¡Cita programada exitosamente!", body.Message)
}

func TestGuardarValidationErrors(t *testing.T) {
	bookingForm := &fakeBookingForm{
		submitFunc: func(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error) {
			return nil, &usecase.ErrValidacion{Errores: []string{
				"Debe seleccionar un paciente",
				validation.MsgDomingo,
			}}
		},
	}
	router := newTestRouter(t, &fakeAgenda{}, bookingForm)

	req := httptest.NewRequest(http.MethodPost, "/citas/guardar", strings.NewReader("fechaCita=2025-03-09"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool     `json:"success"`
		Error   []string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, []string{"Debe seleccionar un paciente", validation.MsgDomingo}, body.Error)
}

func TestGuardarBackendRejection(t *testing.T) {
	bookingForm := &fakeBookingForm{
		submitFunc: func(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error) {
			return nil, &api.RequestError{Status: http.StatusConflict, Message: "El odontólogo ya tiene una cita en ese horario"}
		},
	}
	router := newTestRouter(t, &fakeAgenda{}, bookingForm)

	req := httptest.NewRequest(http.MethodPost, "/citas/guardar", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "El odontólogo ya tiene una cita en ese horario", body.Message)
}

func TestCambiarEstadoCancelSinMotivo(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	req := httptest.NewRequest(http.MethodPost, "/citas/1/estado",
		strings.NewReader(`{"estado": "CANCELADA"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Debe indicar el motivo de la cancelación", body.Message)
}

func TestCambiarEstadoConfirmar(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	req := httptest.NewRequest(http.MethodPost, "/citas/1/estado",
		strings.NewReader(`{"estado": "CONFIRMADA"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCambiarEstadoRechazaValorDesconocido(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	req := httptest.NewRequest(http.MethodPost, "/citas/1/estado",
		strings.NewReader(`{"estado": "ARCHIVADA"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEliminarRedirects(t *testing.T) {
	agenda := &fakeAgenda{}
	router := newTestRouter(t, agenda, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/citas/1/eliminar", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/citas", rec.Header().Get("Location"))
	assert.Equal(t, 1, agenda.deletes)
}

func TestAbrirEditarNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeAgenda{}, &fakeBookingForm{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas/99/editar", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCerrarRedirects(t *testing.T) {
	bookingForm := &fakeBookingForm{}
	router := newTestRouter(t, &fakeAgenda{}, bookingForm)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/citas/cerrar", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, bookingForm.cancels)
}
