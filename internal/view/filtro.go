package view

import (
	"strings"

	"odontoagenda/internal/domain/entity"
)

// FiltrarCitas narrows the list by free text over the patient's name and
// identity document, and by exact status. Empty criteria match everything;
// the text match is case-insensitive.
func FiltrarCitas(citas []entity.Cita, texto string, estado entity.EstadoCita) []entity.Cita {
	texto = strings.ToLower(strings.TrimSpace(texto))

	filtradas := make([]entity.Cita, 0, len(citas))
	for _, c := range citas {
		if estado != "" && c.Estado != estado {
			continue
		}
		if texto != "" {
			nombre := strings.ToLower(c.Paciente.NombreCompleto())
			cedula := strings.ToLower(c.Paciente.Cedula)
			if !strings.Contains(nombre, texto) && !strings.Contains(cedula, texto) {
				continue
			}
		}
		filtradas = append(filtradas, c)
	}
	return filtradas
}
