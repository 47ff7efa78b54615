package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"odontoagenda/internal/converter"
	"odontoagenda/internal/delivery/dto"
	"odontoagenda/internal/domain/entity"
	"odontoagenda/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrMotivoRequerido = errors.New("se requiere un motivo para cancelar la cita")

// ErrEstadoInvalido reports a status value outside the known set.
type ErrEstadoInvalido struct {
	Estado entity.EstadoCita
}

func (e *ErrEstadoInvalido) Error() string {
	return fmt.Sprintf("estado de cita desconocido: %q", e.Estado)
}

type AgendaUsecase interface {
	List(ctx context.Context) ([]entity.Cita, error)
	Detalle(ctx context.Context, id int64) (*dto.DetalleCita, error)
	// CambiarEstado performs a partial status update. Cancellations require a
	// non-blank reason, which travels with the status change.
	CambiarEstado(ctx context.Context, id int64, estado entity.EstadoCita, motivo string) (*entity.Cita, error)
	Eliminar(ctx context.Context, id int64) error
}

type agendaUsecase struct {
	log   *logrus.Logger
	citas repository.CitaRepository
}

func NewAgendaUsecase(log *logrus.Logger, citas repository.CitaRepository) AgendaUsecase {
	return &agendaUsecase{log: log, citas: citas}
}

func (u *agendaUsecase) List(ctx context.Context) ([]entity.Cita, error) {
	return u.citas.List(ctx)
}

func (u *agendaUsecase) Detalle(ctx context.Context, id int64) (*dto.DetalleCita, error) {
	cita, err := u.citas.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cita == nil || cita.ID == 0 {
		return nil, ErrCitaNotFound
	}
	return converter.CitaToDetalle(cita), nil
}

func (u *agendaUsecase) CambiarEstado(ctx context.Context, id int64, estado entity.EstadoCita, motivo string) (*entity.Cita, error) {
	if !estado.Valida() {
		return nil, &ErrEstadoInvalido{Estado: estado}
	}

	motivo = strings.TrimSpace(motivo)
	if estado == entity.EstadoCancelada && motivo == "" {
		return nil, ErrMotivoRequerido
	}
	if estado != entity.EstadoCancelada {
		motivo = ""
	}

	cita, err := u.citas.UpdateEstado(ctx, id, &repository.CambioEstado{
		Estado:            estado,
		MotivoCancelacion: motivo,
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"cita_id": id,
		"estado":  estado,
	}).Info("Estado de cita actualizado")

	return cita, nil
}

func (u *agendaUsecase) Eliminar(ctx context.Context, id int64) error {
	if err := u.citas.Delete(ctx, id); err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{"cita_id": id}).Info("Cita eliminada")
	return nil
}
