package converter

import (
	"fmt"
	"strconv"

	"odontoagenda/internal/delivery/dto"
	"odontoagenda/internal/domain/entity"
	"odontoagenda/internal/domain/repository"
	"odontoagenda/internal/validation"
)

// DraftToPayload turns validated form values into the backend's write
// payload. The form always writes PENDIENTE; status changes go through the
// dedicated partial update.
func DraftToPayload(draft *validation.CitaDraft) (*repository.CitaPayload, error) {
	pacienteID, err := strconv.ParseInt(draft.PacienteID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid paciente id %q", draft.PacienteID)
	}
	odontologoID, err := strconv.ParseInt(draft.OdontologoID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid odontologo id %q", draft.OdontologoID)
	}
	tipoCitaID, err := strconv.ParseInt(draft.TipoCitaID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid tipo de cita id %q", draft.TipoCitaID)
	}
	fecha, err := entity.ParseFecha(draft.Fecha)
	if err != nil {
		return nil, err
	}
	hora, err := entity.ParseHora(draft.Hora)
	if err != nil {
		return nil, err
	}

	return &repository.CitaPayload{
		Paciente:      repository.RefID{ID: pacienteID},
		Odontologo:    repository.RefID{ID: odontologoID},
		TipoCita:      repository.RefID{ID: tipoCitaID},
		Fecha:         fecha,
		Hora:          hora,
		Observaciones: draft.Observaciones,
		Estado:        entity.EstadoPendiente,
	}, nil
}

// CitaToDraft fills form values from a fetched appointment for edit mode.
func CitaToDraft(cita *entity.Cita) *validation.CitaDraft {
	return &validation.CitaDraft{
		PacienteID:    strconv.FormatInt(cita.Paciente.ID, 10),
		TipoCitaID:    strconv.FormatInt(cita.TipoCita.ID, 10),
		Fecha:         cita.Fecha.String(),
		Hora:          cita.Hora.String(),
		OdontologoID:  strconv.FormatInt(cita.Odontologo.ID, 10),
		Observaciones: cita.Observaciones,
	}
}

// CitaToConfirmacion builds the success notice from the backend's response.
func CitaToConfirmacion(cita *entity.Cita, actualizada bool) *dto.ConfirmacionCita {
	accion := "programada"
	if actualizada {
		accion = "actualizada"
	}
	return &dto.ConfirmacionCita{
		Mensaje:    fmt.Sprintf("¡Cita %s exitosamente!", accion),
		Paciente:   cita.Paciente.NombreCompleto(),
		Fecha:      cita.Fecha.String(),
		Hora:       cita.Hora.String(),
		Odontologo: cita.Odontologo.NombreCompleto(),
	}
}

// CitaToDetalle assembles the view-details panel, applying the display
// defaults for optional profile fields.
func CitaToDetalle(cita *entity.Cita) *dto.DetalleCita {
	return &dto.DetalleCita{
		ID:           cita.ID,
		Paciente:     cita.Paciente.NombreCompleto(),
		Documento:    oDefecto(cita.Paciente.Cedula, "No especificado"),
		Telefono:     oDefecto(cita.Paciente.Telefono, "No especificado"),
		TipoCita:     cita.TipoCita.Nombre,
		Duracion:     cita.TipoCita.DuracionMinutos(),
		Fecha:        cita.Fecha.String(),
		Hora:         cita.Hora.String(),
		Odontologo:   cita.Odontologo.NombreCompleto(),
		Especialidad: cita.Odontologo.EspecialidadODefecto(),
		Estado:       cita.Estado.Info().Etiqueta,
		Motivo:       oDefecto(cita.Observaciones, "No especificado"),
	}
}

func oDefecto(valor, defecto string) string {
	if valor == "" {
		return defecto
	}
	return valor
}

// OpcionesPacientes maps patients to selector options.
func OpcionesPacientes(pacientes []entity.Paciente) []dto.Opcion {
	opciones := make([]dto.Opcion, len(pacientes))
	for i, p := range pacientes {
		opciones[i] = dto.Opcion{Valor: strconv.FormatInt(p.ID, 10), Etiqueta: p.NombreCompleto()}
	}
	return opciones
}

// OpcionesOdontologos maps dentists to selector options.
func OpcionesOdontologos(odontologos []entity.Odontologo) []dto.Opcion {
	opciones := make([]dto.Opcion, len(odontologos))
	for i, o := range odontologos {
		opciones[i] = dto.Opcion{Valor: strconv.FormatInt(o.ID, 10), Etiqueta: o.NombreCompleto()}
	}
	return opciones
}

// OpcionesTiposCita maps appointment types to selector options.
func OpcionesTiposCita(tipos []entity.TipoCita) []dto.Opcion {
	opciones := make([]dto.Opcion, len(tipos))
	for i, t := range tipos {
		opciones[i] = dto.Opcion{Valor: strconv.FormatInt(t.ID, 10), Etiqueta: t.Nombre}
	}
	return opciones
}
