package compras

import (
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/shopspring/decimal"
)

// MontoMaximoEnLetras es el mayor monto que MontoALetras puede expresar.
var MontoMaximoEnLetras = decimal.RequireFromString("999999999999.99")

// Las formas de 1 y 21 van apocopadas porque siempre preceden a un sustantivo
// masculino (MIL, MILLONES o PESOS).
var (
	unidades = [...]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}

	especiales = [...]string{
		"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE",
		"DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE",
		"VEINTE", "VEINTIÚN", "VEINTIDÓS", "VEINTITRÉS", "VEINTICUATRO",
		"VEINTICINCO", "VEINTISÉIS", "VEINTISIETE", "VEINTIOCHO", "VEINTINUEVE",
	}

	decenas = [...]string{"", "", "", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}

	centenas = [...]string{
		"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS",
		"QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
	}
)

// MontoALetras expresa un importe en pesos con el formato "PESOS <ENTERO> CON <CC>/100".
// Los centavos se redondean a 2 decimales (mitad hacia arriba).
//
//	MontoALetras(0)          → "PESOS CERO CON 00/100"
//	MontoALetras(1)          → "PESOS UN CON 00/100"
//	MontoALetras(1234567.89) → "PESOS UN MILLÓN DOSCIENTOS TREINTA Y CUATRO MIL QUINIENTOS SESENTA Y SIETE CON 89/100"
func MontoALetras(monto decimal.Decimal) (string, error) {
	if monto.IsNegative() {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAmount, monto.String())
	}
	redondeado := monto.Round(2)
	if redondeado.GreaterThan(MontoMaximoEnLetras) {
		return "", fmt.Errorf("%w: %s supera el máximo expresable", domain.ErrInvalidAmount, monto.String())
	}
	entero := redondeado.IntPart()
	centavos := redondeado.Sub(decimal.NewFromInt(entero)).Shift(2).IntPart()
	return fmt.Sprintf("PESOS %s CON %02d/100", EnteroALetras(entero), centavos), nil
}

// MontoALetrasFloat es la variante para importes en float64; rechaza NaN e infinitos.
func MontoALetrasFloat(monto float64) (string, error) {
	if math.IsNaN(monto) || math.IsInf(monto, 0) {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAmount, monto)
	}
	return MontoALetras(decimal.NewFromFloat(monto))
}

// EnteroALetras deletrea un entero no negativo menor a un billón.
func EnteroALetras(n int64) string {
	if n == 0 {
		return "CERO"
	}
	millones := n / 1_000_000
	resto := n % 1_000_000

	partes := make([]string, 0, 2)
	switch {
	case millones == 1:
		partes = append(partes, "UN MILLÓN")
	case millones > 1:
		partes = append(partes, miles(millones)+" MILLONES")
	}
	if resto > 0 {
		partes = append(partes, miles(resto))
	}
	return strings.Join(partes, " ")
}

// miles deletrea 1..999999.
func miles(n int64) string {
	m := n / 1000
	resto := n % 1000

	partes := make([]string, 0, 2)
	switch {
	case m == 1:
		partes = append(partes, "MIL")
	case m > 1:
		partes = append(partes, cientos(m)+" MIL")
	}
	if resto > 0 {
		partes = append(partes, cientos(resto))
	}
	return strings.Join(partes, " ")
}

// cientos deletrea 1..999.
func cientos(n int64) string {
	if n == 100 {
		return "CIEN"
	}
	c := n / 100
	resto := n % 100

	partes := make([]string, 0, 2)
	if c > 0 {
		partes = append(partes, centenas[c])
	}
	if resto > 0 {
		partes = append(partes, decenasALetras(resto))
	}
	return strings.Join(partes, " ")
}

// decenasALetras deletrea 1..99.
func decenasALetras(n int64) string {
	switch {
	case n < 10:
		return unidades[n]
	case n < 30:
		return especiales[n-10]
	}
	d, u := n/10, n%10
	if u == 0 {
		return decenas[d]
	}
	return decenas[d] + " Y " + unidades[u]
}
