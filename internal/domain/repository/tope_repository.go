package repository

import (
	"context"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TopeRepository define el puerto de persistencia de la tabla de topes de contratación.
type TopeRepository interface {
	// List devuelve los topes ordenados por monto máximo ascendente; a igual monto, por orden de alta.
	List(ctx context.Context) ([]*entity.Tope, error)
	// UpdateMontoMaximo devuelve nil, nil si el tipo de contratación no existe.
	UpdateMontoMaximo(ctx context.Context, tipoContratacion string, monto decimal.Decimal) (*entity.Tope, error)
}
