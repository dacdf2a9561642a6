package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier falso: registra la última consulta y devuelve filas preparadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("cantidad de columnas distinta")
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *string:
			*d = v.(string)
		case *decimal.Decimal:
			*d = v.(decimal.Decimal)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return errors.New("tipo de destino no soportado")
		}
	}
	return nil
}

type fakeQuerier struct {
	sql     string
	args    []any
	row     fakeRow
	execErr error
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), q.execErr
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return nil, errors.New("no soportado")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestContadorRepo_GetAndIncrement(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{int64(7)}}}
	repo := postgres.NewContadorRepository(q)

	v, err := repo.GetAndIncrement(context.Background(), "2026", entity.ContadorOrden)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
	assert.Contains(t, q.sql, "ON CONFLICT (periodo, contador)")
	assert.Contains(t, q.sql, "RETURNING ultimo_valor")
	assert.Equal(t, []any{"2026", "orden"}, q.args)
}

func TestContadorRepo_Error(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("conexión cerrada")}}
	repo := postgres.NewContadorRepository(q)

	_, err := repo.GetAndIncrement(context.Background(), "2026", entity.ContadorPedido)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2026/pedido")
}

func TestTopeRepo_UpdateMontoMaximo(t *testing.T) {
	now := time.Now()
	q := &fakeQuerier{row: fakeRow{values: []any{int64(1), "Contratación directa", decimal.NewFromInt(6000000), now}}}
	repo := postgres.NewTopeRepository(q)

	tope, err := repo.UpdateMontoMaximo(context.Background(), "Contratación directa", decimal.NewFromInt(6000000))
	require.NoError(t, err)
	require.NotNil(t, tope)
	assert.Equal(t, "Contratación directa", tope.TipoContratacion)
	assert.True(t, tope.MontoMaximo.Equal(decimal.NewFromInt(6000000)))
}

func TestTopeRepo_UpdateMontoMaximo_NoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := postgres.NewTopeRepository(q)

	tope, err := repo.UpdateMontoMaximo(context.Background(), "Inexistente", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Nil(t, tope)
}

func TestExpedienteRepo_GetByID_NoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := postgres.NewExpedienteRepository(q)

	exp, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, exp)
	assert.Equal(t, []any{int64(42)}, q.args)
}

func TestOrdenCompraRepo_Create_Duplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}}
	repo := postgres.NewOrdenCompraRepository(q)

	err := repo.Create(context.Background(), &entity.OrdenCompra{NumeroOC: "01/2026"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrdenCompraRepo_Create_AsignaID(t *testing.T) {
	q := &fakeQuerier{}
	repo := postgres.NewOrdenCompraRepository(q)

	oc := &entity.OrdenCompra{NumeroOC: "01/2026", Subtotal: decimal.NewFromInt(250)}
	require.NoError(t, repo.Create(context.Background(), oc))
	assert.NotEmpty(t, oc.ID)
	assert.Len(t, q.args, 22)
	assert.Equal(t, oc.ID, q.args[0])
}

func TestOrdenCompraRepo_GetByID_IDInvalido(t *testing.T) {
	q := &fakeQuerier{}
	repo := postgres.NewOrdenCompraRepository(q)

	oc, err := repo.GetByID(context.Background(), "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, oc)
	assert.Empty(t, q.sql)
}

func TestOrdenCompraRepo_Count(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{int64(42)}}}
	repo := postgres.NewOrdenCompraRepository(q)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Contains(t, q.sql, "COUNT(*)")
	assert.Contains(t, q.sql, "ordenes_compra")
}

func TestOrdenCompraRepo_Count_Error(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("conexión cerrada")}}
	repo := postgres.NewOrdenCompraRepository(q)

	_, err := repo.Count(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count ordenes de compra")
}
