package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.TopeRepository = (*TopeRepo)(nil)

// TopeRepo implementación de TopeRepository sobre la tabla config_topes.
type TopeRepo struct {
	q Querier
}

// NewTopeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTopeRepository(q Querier) *TopeRepo {
	return &TopeRepo{q: q}
}

// List devuelve los topes ordenados por monto máximo (a igual monto, por id).
func (r *TopeRepo) List(ctx context.Context) ([]*entity.Tope, error) {
	query := `
		SELECT id, tipo_contratacion, monto_maximo, updated_at
		FROM config_topes
		ORDER BY monto_maximo ASC, id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list topes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tope
	for rows.Next() {
		t, err := scanTope(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tope: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateMontoMaximo actualiza el monto de un tipo de contratación. Devuelve nil, nil si no existe.
func (r *TopeRepo) UpdateMontoMaximo(ctx context.Context, tipoContratacion string, monto decimal.Decimal) (*entity.Tope, error) {
	query := `
		UPDATE config_topes SET monto_maximo = $2, updated_at = NOW()
		WHERE tipo_contratacion = $1
		RETURNING id, tipo_contratacion, monto_maximo, updated_at`
	t, err := scanTope(r.q.QueryRow(ctx, query, tipoContratacion, monto))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update tope: %w", err)
	}
	return t, nil
}

func scanTope(row pgxScanner) (*entity.Tope, error) {
	var t entity.Tope
	if err := row.Scan(&t.ID, &t.TipoContratacion, &t.MontoMaximo, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
