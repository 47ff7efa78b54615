package validation

import (
	"time"

	"odontoagenda/internal/domain/entity"
	"odontoagenda/pkg/validator"
)

// Clinic scheduling rules: open Monday through Saturday, appointments start
// between 08:00 inclusive and 18:00 exclusive.
const (
	HoraApertura = 8
	HoraCierre   = 18
)

// User-facing rule messages, matching the backend application's wording.
const (
	MsgFechaPasada   = "No se pueden programar citas en fechas pasadas"
	MsgDomingo       = "La clínica no atiende los domingos"
	MsgFueraHorario  = "Las citas solo se pueden programar entre 8:00 AM y 6:00 PM"
	MsgFechaInvalida = "La fecha seleccionada no es válida"
	MsgHoraInvalida  = "La hora seleccionada no es válida"
)

var mensajesRequeridos = map[string]string{
	"PacienteID":   "Debe seleccionar un paciente",
	"TipoCitaID":   "Debe seleccionar el tipo de cita",
	"Fecha":        "Debe seleccionar una fecha",
	"Hora":         "Debe seleccionar una hora",
	"OdontologoID": "Debe asignar un odontólogo",
}

// CitaDraft holds the raw booking form values before submission. Field order
// defines the order of required-field errors.
type CitaDraft struct {
	PacienteID    string `validate:"required"`
	TipoCitaID    string `validate:"required"`
	Fecha         string `validate:"required"`
	Hora          string `validate:"required"`
	OdontologoID  string `validate:"required"`
	Observaciones string
}

// Resultado accumulates every violation found in one pass so the form can
// surface all problems at once.
type Resultado struct {
	Valido  bool
	Errores []string
}

type CitaValidator struct {
	cv    *validator.CustomValidator
	ahora func() time.Time
}

// NewCitaValidator builds the validator. now is the clock used for the
// past-date rule; nil means time.Now.
func NewCitaValidator(now func() time.Time) *CitaValidator {
	if now == nil {
		now = time.Now
	}
	return &CitaValidator{
		cv:    validator.NewValidator(),
		ahora: now,
	}
}

// Validate checks a draft against the clinic's booking rules. Pure: no I/O,
// no mutation. Error order is required fields, then date rules, then the
// hour rule.
func (v *CitaValidator) Validate(draft *CitaDraft) Resultado {
	var errores []string

	if err := v.cv.Validate(draft); err != nil {
		errores = append(errores, v.cv.Messages(err, mensajesRequeridos)...)
	}

	if draft.Fecha != "" {
		fecha, err := entity.ParseFecha(draft.Fecha)
		if err != nil {
			errores = append(errores, MsgFechaInvalida)
		} else {
			hoy := entity.FechaDe(v.ahora())
			if fecha.Before(hoy) {
				errores = append(errores, MsgFechaPasada)
			}
			if fecha.Weekday() == time.Sunday {
				errores = append(errores, MsgDomingo)
			}
		}
	}

	if draft.Hora != "" {
		hora, err := entity.ParseHora(draft.Hora)
		if err != nil {
			errores = append(errores, MsgHoraInvalida)
		} else if hora.Hour < HoraApertura || hora.Hour >= HoraCierre {
			errores = append(errores, MsgFueraHorario)
		}
	}

	return Resultado{Valido: len(errores) == 0, Errores: errores}
}
