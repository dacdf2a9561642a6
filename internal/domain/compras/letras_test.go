package compras_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/compras"
)

func TestMontoALetras(t *testing.T) {
	casos := []struct {
		monto    string
		esperado string
	}{
		{"0", "PESOS CERO CON 00/100"},
		{"1", "PESOS UN CON 00/100"},
		{"15", "PESOS QUINCE CON 00/100"},
		{"16", "PESOS DIECISÉIS CON 00/100"},
		{"21", "PESOS VEINTIÚN CON 00/100"},
		{"22", "PESOS VEINTIDÓS CON 00/100"},
		{"31", "PESOS TREINTA Y UN CON 00/100"},
		{"40", "PESOS CUARENTA CON 00/100"},
		{"100", "PESOS CIEN CON 00/100"},
		{"101", "PESOS CIENTO UN CON 00/100"},
		{"500", "PESOS QUINIENTOS CON 00/100"},
		{"1000", "PESOS MIL CON 00/100"},
		{"1001", "PESOS MIL UN CON 00/100"},
		{"2000", "PESOS DOS MIL CON 00/100"},
		{"21000", "PESOS VEINTIÚN MIL CON 00/100"},
		{"100000", "PESOS CIEN MIL CON 00/100"},
		{"1000000", "PESOS UN MILLÓN CON 00/100"},
		{"2000000", "PESOS DOS MILLONES CON 00/100"},
		{"302.5", "PESOS TRESCIENTOS DOS CON 50/100"},
		{"1234567.89", "PESOS UN MILLÓN DOSCIENTOS TREINTA Y CUATRO MIL QUINIENTOS SESENTA Y SIETE CON 89/100"},
		{"999999999.99", "PESOS NOVECIENTOS NOVENTA Y NUEVE MILLONES NOVECIENTOS NOVENTA Y NUEVE MIL NOVECIENTOS NOVENTA Y NUEVE CON 99/100"},
		{"1000000000", "PESOS MIL MILLONES CON 00/100"},
		{"21000000", "PESOS VEINTIÚN MILLONES CON 00/100"},
	}
	for _, c := range casos {
		t.Run(c.monto, func(t *testing.T) {
			got, err := compras.MontoALetras(decimal.RequireFromString(c.monto))
			require.NoError(t, err)
			assert.Equal(t, c.esperado, got)
		})
	}
}

func TestMontoALetras_RedondeoCentavos(t *testing.T) {
	got, err := compras.MontoALetras(decimal.RequireFromString("10.005"))
	require.NoError(t, err)
	assert.Equal(t, "PESOS DIEZ CON 01/100", got, "redondeo mitad hacia arriba")

	got, err = compras.MontoALetras(decimal.RequireFromString("0.995"))
	require.NoError(t, err)
	assert.Equal(t, "PESOS UN CON 00/100", got, "el acarreo pasa a la parte entera")

	got, err = compras.MontoALetras(decimal.RequireFromString("7.004"))
	require.NoError(t, err)
	assert.Equal(t, "PESOS SIETE CON 00/100", got)
}

func TestMontoALetras_Invalidos(t *testing.T) {
	_, err := compras.MontoALetras(decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = compras.MontoALetras(decimal.RequireFromString("1000000000000"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = compras.MontoALetrasFloat(math.NaN())
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = compras.MontoALetrasFloat(math.Inf(1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestMontoALetrasFloat(t *testing.T) {
	got, err := compras.MontoALetrasFloat(250.75)
	require.NoError(t, err)
	assert.Equal(t, "PESOS DOSCIENTOS CINCUENTA CON 75/100", got)
}
