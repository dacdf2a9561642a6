package compras

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TopesUseCase lectura y actualización de la tabla de topes de contratación.
type TopesUseCase struct {
	repo repository.TopeRepository
}

// NewTopesUseCase construye el caso de uso.
func NewTopesUseCase(repo repository.TopeRepository) *TopesUseCase {
	return &TopesUseCase{repo: repo}
}

// List devuelve los topes ordenados por monto máximo ascendente.
func (uc *TopesUseCase) List(ctx context.Context) ([]dto.TopeResponse, error) {
	topes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar topes: %w", err)
	}
	out := make([]dto.TopeResponse, 0, len(topes))
	for _, t := range domcompras.OrdenarTopes(topes) {
		out = append(out, toTopeResponse(t))
	}
	return out, nil
}

// Update cambia el monto máximo de un tipo de contratación.
//
// Retorna domain.ErrInvalidAmount si el monto es negativo y domain.ErrNotFound si el tipo no existe.
func (uc *TopesUseCase) Update(ctx context.Context, tipoContratacion string, monto decimal.Decimal) (*dto.TopeResponse, error) {
	if monto.IsNegative() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, monto.String())
	}
	tipo := strings.TrimSpace(tipoContratacion)
	if tipo == "" {
		return nil, domain.ErrNotFound
	}
	t, err := uc.repo.UpdateMontoMaximo(ctx, tipo, monto)
	if err != nil {
		return nil, fmt.Errorf("actualizar tope: %w", err)
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTopeResponse(t)
	return &resp, nil
}

func toTopeResponse(t *entity.Tope) dto.TopeResponse {
	return dto.TopeResponse{ID: t.ID, TipoContratacion: t.TipoContratacion, MontoMaximo: t.MontoMaximo}
}
