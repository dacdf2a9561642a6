package repository

import (
	"context"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
)

// ExpedienteRepository define el puerto de lectura de expedientes.
type ExpedienteRepository interface {
	// GetByID devuelve nil, nil si el expediente no existe.
	GetByID(ctx context.Context, id int64) (*entity.Expediente, error)
}
