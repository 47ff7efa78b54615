package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"odontoagenda/internal/converter"
	"odontoagenda/internal/delivery/dto"
	"odontoagenda/internal/domain/entity"
	"odontoagenda/internal/domain/repository"
	"odontoagenda/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrFormularioCerrado = errors.New("booking form is not open")
	ErrEnvioEnCurso      = errors.New("a submit is already in progress")
	ErrCitaNotFound      = errors.New("cita not found")
)

// ErrValidacion carries every rule violation found on submit. It never
// reaches the network layer.
type ErrValidacion struct {
	Errores []string
}

func (e *ErrValidacion) Error() string {
	return fmt.Sprintf("la cita no pasó la validación: %d error(es)", len(e.Errores))
}

// ErrCargaLookups means one of the three reference-data loads failed, so the
// form cannot be shown safely. Accion names the attempted action.
type ErrCargaLookups struct {
	Accion string
	Err    error
}

func (e *ErrCargaLookups) Error() string {
	return fmt.Sprintf("no se pudieron cargar los datos para %s la cita: %v", e.Accion, e.Err)
}

func (e *ErrCargaLookups) Unwrap() error { return e.Err }

// ErrCargaCita means the appointment targeted by an edit could not be
// fetched.
type ErrCargaCita struct {
	ID  int64
	Err error
}

func (e *ErrCargaCita) Error() string {
	return fmt.Sprintf("no se pudo cargar la cita %d para editar: %v", e.ID, e.Err)
}

func (e *ErrCargaCita) Unwrap() error { return e.Err }

// EstadoFormulario is the booking form's lifecycle state.
type EstadoFormulario int

const (
	FormularioCerrado EstadoFormulario = iota
	FormularioCrear
	FormularioEditar
	FormularioEnviando
)

const (
	ModoCrear  = "crear"
	ModoEditar = "editar"
)

type BookingFormUsecase interface {
	// OpenCreate loads the reference lookups and opens the form in create
	// mode. The form is never shown with incomplete selector options.
	OpenCreate(ctx context.Context) (*dto.FormularioCita, error)
	// OpenEdit fetches the appointment, loads the lookups and opens the form
	// prefilled. The fetched appointment's time becomes a selectable option
	// even when it is not one of the standard slots.
	OpenEdit(ctx context.Context, id int64) (*dto.FormularioCita, error)
	// Submit validates the draft and creates or updates depending on the
	// session mode. On success the form closes and the returned confirmation
	// is built from the backend's response.
	Submit(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error)
	// Cancel closes the form from any state, always clearing the edit target.
	Cancel()
	Estado() (EstadoFormulario, int64)
}

type bookingFormUsecase struct {
	log       *logrus.Logger
	citas     repository.CitaRepository
	lookups   repository.LookupRepository
	validator *validation.CitaValidator
	ahora     func() time.Time

	// Session state of the single booking form. mode and edit target are
	// always written together, under mu.
	mu         sync.Mutex
	estado     EstadoFormulario
	editandoID int64
	generacion uint64
}

// NewBookingFormUsecase wires the booking form controller. now is the clock
// used for "today"; nil means time.Now.
func NewBookingFormUsecase(
	log *logrus.Logger,
	citas repository.CitaRepository,
	lookups repository.LookupRepository,
	now func() time.Time,
) BookingFormUsecase {
	if now == nil {
		now = time.Now
	}
	return &bookingFormUsecase{
		log:       log,
		citas:     citas,
		lookups:   lookups,
		validator: validation.NewCitaValidator(now),
		ahora:     now,
	}
}

func (u *bookingFormUsecase) OpenCreate(ctx context.Context) (*dto.FormularioCita, error) {
	pacientes, odontologos, tipos, err := u.cargarLookups(ctx)
	if err != nil {
		u.log.Warnf("Failed to load lookups for create form: %+v", err)
		return nil, &ErrCargaLookups{Accion: "crear", Err: err}
	}

	u.mu.Lock()
	u.estado = FormularioCrear
	u.editandoID = 0 // drop any stale edit target
	u.generacion++
	u.mu.Unlock()

	return &dto.FormularioCita{
		Modo:        ModoCrear,
		Titulo:      "Nueva Cita",
		BotonEnviar: "Agendar Cita",
		FechaMinima: entity.FechaDe(u.ahora()).String(),
		Pacientes:   converter.OpcionesPacientes(pacientes),
		Odontologos: converter.OpcionesOdontologos(odontologos),
		TiposCita:   converter.OpcionesTiposCita(tipos),
		Horas:       horasDisponibles(),
		Valores:     &validation.CitaDraft{},
	}, nil
}

func (u *bookingFormUsecase) OpenEdit(ctx context.Context, id int64) (*dto.FormularioCita, error) {
	cita, err := u.citas.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch cita %d for edit: %+v", id, err)
		return nil, &ErrCargaCita{ID: id, Err: err}
	}
	if cita == nil || cita.ID == 0 {
		return nil, &ErrCargaCita{ID: id, Err: ErrCitaNotFound}
	}

	pacientes, odontologos, tipos, err := u.cargarLookups(ctx)
	if err != nil {
		u.log.Warnf("Failed to load lookups for edit form: %+v", err)
		return nil, &ErrCargaLookups{Accion: "editar", Err: err}
	}

	valores := converter.CitaToDraft(cita)

	u.mu.Lock()
	u.estado = FormularioEditar
	u.editandoID = id
	u.generacion++
	u.mu.Unlock()

	return &dto.FormularioCita{
		Modo:        ModoEditar,
		Titulo:      "Editar Cita",
		BotonEnviar: "Actualizar Cita",
		FechaMinima: "", // past dates stay reachable when editing
		Pacientes:   converter.OpcionesPacientes(pacientes),
		Odontologos: converter.OpcionesOdontologos(odontologos),
		TiposCita:   converter.OpcionesTiposCita(tipos),
		Horas:       conHora(horasDisponibles(), valores.Hora),
		Valores:     valores,
	}, nil
}

func (u *bookingFormUsecase) Submit(ctx context.Context, draft *validation.CitaDraft) (*dto.ConfirmacionCita, error) {
	u.mu.Lock()
	switch u.estado {
	case FormularioCerrado:
		u.mu.Unlock()
		return nil, ErrFormularioCerrado
	case FormularioEnviando:
		u.mu.Unlock()
		return nil, ErrEnvioEnCurso
	}

	resultado := u.validator.Validate(draft)
	if !resultado.Valido {
		// Stay open, surface every violation, never touch the network.
		u.mu.Unlock()
		return nil, &ErrValidacion{Errores: resultado.Errores}
	}

	estadoPrevio := u.estado
	edicion := u.estado == FormularioEditar
	idEnvio := u.editandoID
	gen := u.generacion
	u.estado = FormularioEnviando
	u.mu.Unlock()

	payload, err := converter.DraftToPayload(draft)
	if err != nil {
		u.reabrir(gen, estadoPrevio)
		return nil, err
	}

	var cita *entity.Cita
	if edicion {
		cita, err = u.citas.Update(ctx, idEnvio, payload)
	} else {
		cita, err = u.citas.Create(ctx, payload)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		// Recoverable: the form stays open with the entered values.
		if u.generacion == gen {
			u.estado = estadoPrevio
		}
		return nil, err
	}

	// Only close the session the submit belongs to. If the user already
	// closed or reopened the form, this response is stale for the UI.
	if u.generacion == gen {
		u.estado = FormularioCerrado
		u.editandoID = 0
		u.generacion++
	}

	u.log.WithFields(logrus.Fields{
		"cita_id": cita.ID,
		"fecha":   cita.Fecha.String(),
		"hora":    cita.Hora.String(),
		"edicion": edicion,
	}).Info("Cita guardada")

	return converter.CitaToConfirmacion(cita, edicion), nil
}

func (u *bookingFormUsecase) Cancel() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.estado = FormularioCerrado
	u.editandoID = 0
	u.generacion++
}

func (u *bookingFormUsecase) Estado() (EstadoFormulario, int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.estado, u.editandoID
}

// reabrir restores the pre-submit state after a local failure, unless the
// session already moved on.
func (u *bookingFormUsecase) reabrir(gen uint64, estado EstadoFormulario) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.generacion == gen {
		u.estado = estado
	}
}

// cargarLookups fetches the three reference lists concurrently. All three
// must resolve before the form may be shown; the first failure wins.
func (u *bookingFormUsecase) cargarLookups(ctx context.Context) ([]entity.Paciente, []entity.Odontologo, []entity.TipoCita, error) {
	var (
		pacientes   []entity.Paciente
		odontologos []entity.Odontologo
		tipos       []entity.TipoCita
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pacientes, err = u.lookups.ListPacientes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		odontologos, err = u.lookups.ListOdontologos(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tipos, err = u.lookups.ListTiposCita(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return pacientes, odontologos, tipos, nil
}

// horasDisponibles lists the standard half-hour slots inside opening hours.
func horasDisponibles() []string {
	var horas []string
	for h := validation.HoraApertura; h < validation.HoraCierre; h++ {
		horas = append(horas, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return horas
}

// conHora ensures the given time is a selectable option, inserting it in
// chronological position when it is not a standard slot. Lexicographic order
// is chronological for the fixed-width HH:MM form.
func conHora(horas []string, hora string) []string {
	if hora == "" {
		return horas
	}
	for _, h := range horas {
		if h == hora {
			return horas
		}
	}
	horas = append(horas, hora)
	sort.Strings(horas)
	return horas
}
