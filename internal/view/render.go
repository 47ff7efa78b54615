package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"odontoagenda/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var diasSemana = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FechaLarga renders a date the way the clinic staff reads it,
// e.g. "lunes, 4 de noviembre de 2024".
func FechaLarga(f entity.Fecha) string {
	if f.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		diasSemana[f.Weekday()], f.Day, meses[int(f.Month)-1], f.Year)
}

// PaginaCitas is the data for the full appointments page.
type PaginaCitas struct {
	Contadores Contadores
	Citas      []entity.Cita
	Agenda     AgendaDia
}

// Renderer holds the parsed page and fragment templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"estadoInfo": func(e entity.EstadoCita) entity.EstadoInfo { return e.Info() },
		"fechaLarga": FechaLarga,
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
