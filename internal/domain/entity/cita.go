package entity

// EstadoCita represents the status of an appointment as stored by the backend
type EstadoCita string

const (
	EstadoPendiente  EstadoCita = "PENDIENTE"
	EstadoConfirmada EstadoCita = "CONFIRMADA"
	EstadoCompletada EstadoCita = "COMPLETADA"
	EstadoCancelada  EstadoCita = "CANCELADA"
	EstadoNoAsistio  EstadoCita = "NO_ASISTIO"
)

// EstadoInfo carries the display attributes of a status. Keeping them in one
// table means adding a status is a single declaration.
type EstadoInfo struct {
	Etiqueta string
	Color    string
	Icono    string
}

var estados = map[EstadoCita]EstadoInfo{
	EstadoPendiente:  {Etiqueta: "Pendiente", Color: "bg-yellow-100 text-yellow-800", Icono: "fa-clock"},
	EstadoConfirmada: {Etiqueta: "Confirmada", Color: "bg-green-100 text-green-800", Icono: "fa-check-circle"},
	EstadoCompletada: {Etiqueta: "Completada", Color: "bg-blue-100 text-blue-800", Icono: "fa-circle-check"},
	EstadoCancelada:  {Etiqueta: "Cancelada", Color: "bg-red-100 text-red-800", Icono: "fa-times-circle"},
	EstadoNoAsistio:  {Etiqueta: "No Asistió", Color: "bg-gray-100 text-gray-800", Icono: "fa-user-slash"},
}

// Info returns the display attributes for the status. Unknown values fall back
// to a neutral presentation with the raw value as label.
func (e EstadoCita) Info() EstadoInfo {
	if info, ok := estados[e]; ok {
		return info
	}
	return EstadoInfo{Etiqueta: string(e), Color: "bg-gray-100 text-gray-800", Icono: "fa-clock"}
}

// Valida reports whether the value is one of the known statuses.
func (e EstadoCita) Valida() bool {
	_, ok := estados[e]
	return ok
}

// Cita represents a scheduled dental visit linking a patient, a dentist and a
// treatment type at a date and time. The id is assigned by the backend.
type Cita struct {
	ID            int64      `json:"id"`
	Fecha         Fecha      `json:"fecha"`
	Hora          Hora       `json:"hora"`
	Paciente      Paciente   `json:"paciente"`
	Odontologo    Odontologo `json:"odontologo"`
	TipoCita      TipoCita   `json:"tipoCita"`
	Estado        EstadoCita `json:"estado"`
	Observaciones string     `json:"observaciones"`
}

// IsPendiente checks if the appointment is waiting for confirmation
func (c *Cita) IsPendiente() bool {
	return c.Estado == EstadoPendiente
}

// IsCompletada checks if the appointment already took place
func (c *Cita) IsCompletada() bool {
	return c.Estado == EstadoCompletada
}

// IsCancelada checks if the appointment was cancelled
func (c *Cita) IsCancelada() bool {
	return c.Estado == EstadoCancelada
}
