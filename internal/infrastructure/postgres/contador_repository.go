package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
)

var _ repository.ContadorRepository = (*ContadorRepo)(nil)

// ContadorRepo contadores de numeración en oc_contadores.
// Debe usarse dentro de una transacción (ver TxRunner.RunContadores).
type ContadorRepo struct {
	q Querier
}

// NewContadorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContadorRepository(q Querier) *ContadorRepo {
	return &ContadorRepo{q: q}
}

// GetAndIncrement crea el contador en 1 o lo incrementa, y devuelve el nuevo valor.
// El upsert toma el lock de la fila, así que dos transacciones concurrentes nunca leen el mismo valor.
func (r *ContadorRepo) GetAndIncrement(ctx context.Context, periodo, contador string) (int64, error) {
	query := `
		INSERT INTO oc_contadores (periodo, contador, ultimo_valor, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (periodo, contador)
		DO UPDATE SET ultimo_valor = oc_contadores.ultimo_valor + 1, updated_at = NOW()
		RETURNING ultimo_valor`
	var v int64
	if err := r.q.QueryRow(ctx, query, periodo, contador).Scan(&v); err != nil {
		return 0, fmt.Errorf("increment contador %s/%s: %w", periodo, contador, err)
	}
	return v, nil
}
