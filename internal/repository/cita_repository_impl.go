package repository

import (
	"context"
	"fmt"

	"odontoagenda/internal/domain/entity"
	domainRepo "odontoagenda/internal/domain/repository"
	"odontoagenda/internal/infrastructure/api"

	"github.com/sirupsen/logrus"
)

type citaRepository struct {
	api *api.Client
	log *logrus.Logger
}

func NewCitaRepository(apiClient *api.Client, log *logrus.Logger) domainRepo.CitaRepository {
	return &citaRepository{api: apiClient, log: log}
}

func (r *citaRepository) List(ctx context.Context) ([]entity.Cita, error) {
	var citas []entity.Cita
	if err := r.api.Get(ctx, "/citas", &citas); err != nil {
		r.log.Warnf("Failed to list citas: %+v", err)
		return nil, err
	}
	return citas, nil
}

func (r *citaRepository) Get(ctx context.Context, id int64) (*entity.Cita, error) {
	var cita entity.Cita
	if err := r.api.Get(ctx, fmt.Sprintf("/citas/%d", id), &cita); err != nil {
		r.log.Warnf("Failed to get cita %d: %+v", id, err)
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) Create(ctx context.Context, payload *domainRepo.CitaPayload) (*entity.Cita, error) {
	var cita entity.Cita
	if err := r.api.Post(ctx, "/citas", payload, &cita); err != nil {
		r.log.Warnf("Failed to create cita: %+v", err)
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) Update(ctx context.Context, id int64, payload *domainRepo.CitaPayload) (*entity.Cita, error) {
	var cita entity.Cita
	if err := r.api.Put(ctx, fmt.Sprintf("/citas/%d", id), payload, &cita); err != nil {
		r.log.Warnf("Failed to update cita %d: %+v", id, err)
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) UpdateEstado(ctx context.Context, id int64, cambio *domainRepo.CambioEstado) (*entity.Cita, error) {
	var cita entity.Cita
	if err := r.api.Put(ctx, fmt.Sprintf("/citas/%d", id), cambio, &cita); err != nil {
		r.log.Warnf("Failed to update estado of cita %d: %+v", id, err)
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/citas/%d", id)); err != nil {
		r.log.Warnf("Failed to delete cita %d: %+v", id, err)
		return err
	}
	return nil
}
