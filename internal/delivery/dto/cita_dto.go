package dto

import "odontoagenda/internal/validation"

// Opcion is one selectable {value, label} pair for a form selector.
type Opcion struct {
	Valor    string `json:"valor"`
	Etiqueta string `json:"etiqueta"`
}

// FormularioCita is everything the booking form needs to render: mode
// chrome, selector options and, in edit mode, the prefilled values.
type FormularioCita struct {
	Modo        string
	Titulo      string
	BotonEnviar string
	// FechaMinima restricts the date picker; empty in edit mode.
	FechaMinima string
	Pacientes   []Opcion
	Odontologos []Opcion
	TiposCita   []Opcion
	Horas       []string
	Valores     *validation.CitaDraft
}

// ConfirmacionCita carries the success notice shown after a submit. Every
// field comes from the backend's response, not from the locally entered
// values.
type ConfirmacionCita struct {
	Mensaje    string `json:"mensaje"`
	Paciente   string `json:"paciente"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Odontologo string `json:"odontologo"`
}

// DetalleCita is the view-details panel of one appointment.
type DetalleCita struct {
	ID           int64  `json:"id"`
	Paciente     string `json:"paciente"`
	Documento    string `json:"documento"`
	Telefono     string `json:"telefono"`
	TipoCita     string `json:"tipoCita"`
	Duracion     int    `json:"duracion"`
	Fecha        string `json:"fecha"`
	Hora         string `json:"hora"`
	Odontologo   string `json:"odontologo"`
	Especialidad string `json:"especialidad"`
	Estado       string `json:"estado"`
	Motivo       string `json:"motivo"`
}

// CambioEstadoRequest is the body of the status-change action.
type CambioEstadoRequest struct {
	Estado            string `json:"estado" validate:"required,oneof=PENDIENTE CONFIRMADA COMPLETADA CANCELADA NO_ASISTIO"`
	MotivoCancelacion string `json:"motivoCancelacion"`
}
