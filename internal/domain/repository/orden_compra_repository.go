package repository

import (
	"context"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
)

// OrdenCompraRepository define el puerto de persistencia para órdenes de compra y renglones.
type OrdenCompraRepository interface {
	// Create devuelve domain.ErrDuplicate si el numero_oc ya existe.
	Create(ctx context.Context, oc *entity.OrdenCompra) error
	CreateRenglon(ctx context.Context, r *entity.Renglon) error
	GetByID(ctx context.Context, id string) (*entity.OrdenCompra, error)
	GetRenglones(ctx context.Context, ordenCompraID string) ([]*entity.Renglon, error)
	List(ctx context.Context, limit, offset int) ([]*entity.OrdenCompra, error)
	Count(ctx context.Context) (int64, error)
}
