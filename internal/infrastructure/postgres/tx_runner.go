package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
)

var _ compras.ContadorTxRunner = (*TxRunner)(nil)
var _ compras.OrdenTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta los callbacks de los casos de uso dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunContadores ejecuta fn con el repo de contadores atado a una transacción.
// Si fn falla no queda ningún incremento persistido.
func (r *TxRunner) RunContadores(ctx context.Context, fn func(contadores repository.ContadorRepository) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		return fn(NewContadorRepository(tx))
	})
}

// RunOrdenes ejecuta fn con el repo de órdenes (cabecera + renglones) atado a una transacción.
func (r *TxRunner) RunOrdenes(ctx context.Context, fn func(ordenes repository.OrdenCompraRepository) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		return fn(NewOrdenCompraRepository(tx))
	})
}

// withTx hace Commit si fn termina sin error y Rollback en cualquier otro caso.
func (r *TxRunner) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
