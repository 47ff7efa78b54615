package repository

import (
	"context"

	"odontoagenda/internal/domain/entity"
)

// LookupRepository exposes the read-only reference lists that populate the
// booking form selectors. The three lists are independent and safe to load
// concurrently.
type LookupRepository interface {
	ListPacientes(ctx context.Context) ([]entity.Paciente, error)
	ListOdontologos(ctx context.Context) ([]entity.Odontologo, error)
	ListTiposCita(ctx context.Context) ([]entity.TipoCita, error)
}
