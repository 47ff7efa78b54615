package view

import (
	"sort"

	"odontoagenda/internal/domain/entity"
)

// AgendaDia is the single-day timeline with its navigation targets.
type AgendaDia struct {
	Fecha     entity.Fecha
	Anterior  entity.Fecha
	Siguiente entity.Fecha
	Citas     []entity.Cita
}

// CitasDelDia keeps only the appointments of the given day, ordered by time.
// Appointments at the same time keep their incoming relative order.
func CitasDelDia(citas []entity.Cita, dia entity.Fecha) []entity.Cita {
	var delDia []entity.Cita
	for _, c := range citas {
		if c.Fecha.Equal(dia) {
			delDia = append(delDia, c)
		}
	}
	sort.SliceStable(delDia, func(i, j int) bool {
		return delDia[i].Hora.Before(delDia[j].Hora)
	})
	return delDia
}

// ArmarAgendaDia builds the day timeline for the given date, including the
// previous and next days for navigation.
func ArmarAgendaDia(citas []entity.Cita, dia entity.Fecha) AgendaDia {
	return AgendaDia{
		Fecha:     dia,
		Anterior:  dia.AddDias(-1),
		Siguiente: dia.AddDias(1),
		Citas:     CitasDelDia(citas, dia),
	}
}
