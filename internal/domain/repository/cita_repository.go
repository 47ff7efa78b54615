package repository

import (
	"context"

	"odontoagenda/internal/domain/entity"
)

// RefID is a reference-by-id to an entity owned by another module. Write
// payloads nest these objects so the backend can bind the relation directly.
type RefID struct {
	ID int64 `json:"id"`
}

// CitaPayload is the backend's write contract for an appointment. The nested
// reference objects and the field names must match the REST API exactly.
type CitaPayload struct {
	Paciente      RefID             `json:"paciente"`
	Odontologo    RefID             `json:"odontologo"`
	TipoCita      RefID             `json:"tipoCita"`
	Fecha         entity.Fecha      `json:"fecha"`
	Hora          entity.Hora       `json:"hora"`
	Observaciones string            `json:"observaciones"`
	Estado        entity.EstadoCita `json:"estado"`
}

// CambioEstado is the partial update used by the confirm/cancel actions.
type CambioEstado struct {
	Estado            entity.EstadoCita `json:"estado"`
	MotivoCancelacion string            `json:"motivoCancelacion,omitempty"`
}

type CitaRepository interface {
	List(ctx context.Context) ([]entity.Cita, error)
	Get(ctx context.Context, id int64) (*entity.Cita, error)
	Create(ctx context.Context, payload *CitaPayload) (*entity.Cita, error)
	Update(ctx context.Context, id int64, payload *CitaPayload) (*entity.Cita, error)
	UpdateEstado(ctx context.Context, id int64, cambio *CambioEstado) (*entity.Cita, error)
	Delete(ctx context.Context, id int64) error
}
