package entity

// Reference data owned by other modules of the clinic application. The booking
// core only reads these to populate selectors and to display denormalized
// fields coming back inside an appointment.

type Paciente struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

func (p Paciente) NombreCompleto() string {
	return p.Nombre + " " + p.Apellido
}

type Odontologo struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Matricula    string `json:"matricula"`
	Especialidad string `json:"especialidad"`
}

func (o Odontologo) NombreCompleto() string {
	return "Dr. " + o.Nombre + " " + o.Apellido
}

// EspecialidadODefecto falls back to the clinic's general practice label when
// the profile has no specialty registered.
func (o Odontologo) EspecialidadODefecto() string {
	if o.Especialidad == "" {
		return "Odontología General"
	}
	return o.Especialidad
}

type TipoCita struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Duracion    int    `json:"duracion"`
}

// DuracionMinutos defaults to the clinic's standard 30-minute slot when the
// type has no duration configured.
func (t TipoCita) DuracionMinutos() int {
	if t.Duracion <= 0 {
		return 30
	}
	return t.Duracion
}
