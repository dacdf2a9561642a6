package compras_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Asignación secuencial
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_PrimeraDelPeriodo(t *testing.T) {
	a, err := compras.NewSecuenciaAllocator(newMemContadores(), "", logger.Nop(), nil)
	require.NoError(t, err)

	num, err := a.Asignar(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, "2026", num.Periodo)
	assert.Equal(t, int64(1), num.SecuenciaOrden)
	assert.Equal(t, "01/2026", num.NumeroOC)
	assert.Equal(t, int64(1), num.NumeroPedido)
}

func TestAsignar_EstrictamenteCreciente(t *testing.T) {
	a, err := compras.NewSecuenciaAllocator(newMemContadores(), "", nil, nil)
	require.NoError(t, err)

	var previo int64
	for i := 0; i < 150; i++ {
		num, err := a.Asignar(context.Background(), "2026")
		require.NoError(t, err)
		assert.Greater(t, num.SecuenciaOrden, previo)
		assert.Equal(t, num.SecuenciaOrden, num.NumeroPedido)
		previo = num.SecuenciaOrden
	}
	assert.Equal(t, int64(150), previo)
}

func TestAsignar_PeriodosIndependientes(t *testing.T) {
	m := newMemContadores()
	a, err := compras.NewSecuenciaAllocator(m, "", nil, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := a.Asignar(context.Background(), "2025")
		require.NoError(t, err)
	}
	num, err := a.Asignar(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, "01/2026", num.NumeroOC)
	assert.Equal(t, int64(3), m.valor("2025", entity.ContadorOrden))
}

func TestAsignar_PlantillaPersonalizada(t *testing.T) {
	a, err := compras.NewSecuenciaAllocator(newMemContadores(), "OC-{PERIODO}-{SEQ4}", nil, nil)
	require.NoError(t, err)

	num, err := a.Asignar(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, "OC-2026-0001", num.NumeroOC)
}

func TestNewSecuenciaAllocator_PlantillaInvalida(t *testing.T) {
	_, err := compras.NewSecuenciaAllocator(newMemContadores(), "{DESCONOCIDO}", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: sin duplicados ni huecos
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_ConcurrenteSinDuplicadosNiHuecos(t *testing.T) {
	const n = 10000
	m := newMemContadores()
	a, err := compras.NewSecuenciaAllocator(m, "", nil, nil)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numeros = make(map[string]struct{}, n)
		pedidos = make(map[int64]struct{}, n)
		errs    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := a.Asignar(context.Background(), "2026")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numeros[num.NumeroOC] = struct{}{}
			pedidos[num.NumeroPedido] = struct{}{}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, numeros, n)
	assert.Len(t, pedidos, n)
	for i := int64(1); i <= n; i++ {
		_, ok := pedidos[i]
		require.True(t, ok, "falta el pedido %d", i)
		_, ok = numeros[fmt.Sprintf("%02d/2026", i)]
		require.True(t, ok, "falta la OC %d", i)
	}
	assert.Equal(t, int64(n), m.valor("2026", entity.ContadorOrden))
	assert.Equal(t, int64(n), m.valor("2026", entity.ContadorPedido))
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_ErrorDePersistencia_NoConsumeNumeracion(t *testing.T) {
	m := newMemContadores()
	m.fallarEn = entity.ContadorPedido
	met := newFakeMetricas()
	a, err := compras.NewSecuenciaAllocator(m, "", nil, met)
	require.NoError(t, err)

	_, err = a.Asignar(context.Background(), "2026")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllocation)
	assert.Equal(t, 1, met.asignacion)
	// el incremento de la orden se descartó junto con la transacción
	assert.Equal(t, int64(0), m.valor("2026", entity.ContadorOrden))

	m.fallarEn = ""
	num, err := a.Asignar(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, "01/2026", num.NumeroOC)
	assert.Equal(t, int64(1), num.NumeroPedido)
}

func TestAsignar_PeriodoVacio(t *testing.T) {
	m := newMemContadores()
	a, err := compras.NewSecuenciaAllocator(m, "", nil, nil)
	require.NoError(t, err)

	_, err = a.Asignar(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrAllocation)
	assert.Zero(t, m.calls)
}

func TestSiguienteNumero_ContadoresSeparados(t *testing.T) {
	a, err := compras.NewSecuenciaAllocator(newMemContadores(), "", nil, nil)
	require.NoError(t, err)
	ctx := context.Background()

	n1, err := a.SiguienteNumeroOrden(ctx, "2026")
	require.NoError(t, err)
	n2, err := a.SiguienteNumeroOrden(ctx, "2026")
	require.NoError(t, err)
	p1, err := a.SiguienteNumeroPedido(ctx, "2026")
	require.NoError(t, err)

	assert.Equal(t, "01/2026", n1)
	assert.Equal(t, "02/2026", n2)
	assert.Equal(t, int64(1), p1)

	num, err := a.Asignar(ctx, "2026")
	require.NoError(t, err)
	assert.Equal(t, "03/2026", num.NumeroOC)
	assert.Equal(t, int64(2), num.NumeroPedido)
}
