package repository

import (
	"context"

	"odontoagenda/internal/domain/entity"
	domainRepo "odontoagenda/internal/domain/repository"
	"odontoagenda/internal/infrastructure/api"

	"github.com/sirupsen/logrus"
)

type lookupRepository struct {
	api *api.Client
	log *logrus.Logger
}

func NewLookupRepository(apiClient *api.Client, log *logrus.Logger) domainRepo.LookupRepository {
	return &lookupRepository{api: apiClient, log: log}
}

func (r *lookupRepository) ListPacientes(ctx context.Context) ([]entity.Paciente, error) {
	var pacientes []entity.Paciente
	if err := r.api.Get(ctx, "/pacientes", &pacientes); err != nil {
		r.log.Warnf("Failed to list pacientes: %+v", err)
		return nil, err
	}
	return pacientes, nil
}

func (r *lookupRepository) ListOdontologos(ctx context.Context) ([]entity.Odontologo, error) {
	var odontologos []entity.Odontologo
	if err := r.api.Get(ctx, "/odontologos", &odontologos); err != nil {
		r.log.Warnf("Failed to list odontologos: %+v", err)
		return nil, err
	}
	return odontologos, nil
}

func (r *lookupRepository) ListTiposCita(ctx context.Context) ([]entity.TipoCita, error) {
	var tipos []entity.TipoCita
	if err := r.api.Get(ctx, "/tipos-cita", &tipos); err != nil {
		r.log.Warnf("Failed to list tipos de cita: %+v", err)
		return nil, err
	}
	return tipos, nil
}
