package view

import (
	"time"

	"odontoagenda/internal/domain/entity"
)

// Contadores are the dashboard counters shown above the appointment list.
type Contadores struct {
	Hoy            int `json:"hoy"`
	Pendientes     int `json:"pendientes"`
	CompletadasMes int `json:"completadasMes"`
}

// CalcularContadores derives the counters from the full appointment list in a
// single pass. Recomputing from the same list always yields the same result.
func CalcularContadores(citas []entity.Cita, ahora time.Time) Contadores {
	hoy := entity.FechaDe(ahora)

	var c Contadores
	for i := range citas {
		cita := &citas[i]
		if cita.Fecha.Equal(hoy) {
			c.Hoy++
		}
		if cita.IsPendiente() {
			c.Pendientes++
		}
		if cita.IsCompletada() && cita.Fecha.EnMes(ahora.Month(), ahora.Year()) {
			c.CompletadasMes++
		}
	}
	return c
}
