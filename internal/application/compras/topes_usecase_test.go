package compras_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
)

func TestTopesList_OrdenadosPorMonto(t *testing.T) {
	repo := &fakeTopes{items: []*entity.Tope{
		{ID: 2, TipoContratacion: "B", MontoMaximo: decimal.NewFromInt(200)},
		{ID: 1, TipoContratacion: "A", MontoMaximo: decimal.NewFromInt(100)},
	}}
	uc := compras.NewTopesUseCase(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].TipoContratacion)
	assert.Equal(t, "B", out[1].TipoContratacion)
}

func TestTopesList_ErrorRepo(t *testing.T) {
	uc := compras.NewTopesUseCase(&fakeTopes{err: errors.New("timeout")})

	_, err := uc.List(context.Background())
	assert.Error(t, err)
}

func TestTopesUpdate(t *testing.T) {
	repo := topesSemilla()
	uc := compras.NewTopesUseCase(repo)
	ctx := context.Background()

	resp, err := uc.Update(ctx, " Contratación directa ", decimal.NewFromInt(6_000_000))
	require.NoError(t, err)
	assert.True(t, resp.MontoMaximo.Equal(decimal.NewFromInt(6_000_000)))

	_, err = uc.Update(ctx, "Contratación directa", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Update(ctx, "Inexistente", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "  ", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
