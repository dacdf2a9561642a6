// Package compras reúne las reglas de cálculo de una orden de compra:
// clasificación por topes, IVA, monto en letras y formato de numeración.
package compras

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PoliticaExcedente define qué hacer cuando el monto supera todos los topes.
type PoliticaExcedente string

const (
	// PoliticaTopeMaximo asigna el tipo de contratación de mayor monto.
	PoliticaTopeMaximo PoliticaExcedente = "tope_maximo"
	// PoliticaError rechaza el monto con domain.ErrExceedsThresholds.
	PoliticaError PoliticaExcedente = "error"
)

// ParsePoliticaExcedente interpreta el valor de configuración. Vacío equivale a PoliticaTopeMaximo.
func ParsePoliticaExcedente(s string) (PoliticaExcedente, error) {
	switch PoliticaExcedente(strings.ToLower(strings.TrimSpace(s))) {
	case "", PoliticaTopeMaximo:
		return PoliticaTopeMaximo, nil
	case PoliticaError:
		return PoliticaError, nil
	default:
		return "", fmt.Errorf("%w: política de excedente desconocida %q", domain.ErrInvalidInput, s)
	}
}

// OrdenarTopes devuelve una copia ordenada por monto máximo ascendente.
// El orden es estable: a igual monto se respeta el orden recibido.
func OrdenarTopes(topes []*entity.Tope) []*entity.Tope {
	out := make([]*entity.Tope, len(topes))
	copy(out, topes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MontoMaximo.LessThan(out[j].MontoMaximo)
	})
	return out
}

// Clasificar devuelve el tipo de contratación del primer tope cuyo monto máximo
// es mayor o igual al monto (límite inclusivo).
func Clasificar(monto decimal.Decimal, topes []*entity.Tope, politica PoliticaExcedente) (string, error) {
	if monto.IsNegative() {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAmount, monto.String())
	}
	if len(topes) == 0 {
		return "", domain.ErrNoThresholds
	}
	ordenados := OrdenarTopes(topes)
	for _, t := range ordenados {
		if t.MontoMaximo.GreaterThanOrEqual(monto) {
			return t.TipoContratacion, nil
		}
	}
	if politica == PoliticaError {
		return "", fmt.Errorf("%w: %s", domain.ErrExceedsThresholds, monto.String())
	}
	return ordenados[len(ordenados)-1].TipoContratacion, nil
}
