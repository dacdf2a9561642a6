package compras

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Alícuotas de IVA según la condición del proveedor.
var (
	AlicuotaInscripto   = decimal.RequireFromString("0.21")
	AlicuotaNoInscripto = decimal.RequireFromString("0.105")
)

// Totales de una orden de compra. Total == Subtotal + IVA sin redondeo intermedio.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// Alicuota devuelve la tasa de IVA aplicable.
func Alicuota(esIVAInscripto bool) decimal.Decimal {
	if esIVAInscripto {
		return AlicuotaInscripto
	}
	return AlicuotaNoInscripto
}

// CalcularTotales suma cantidad × valor unitario de cada renglón y aplica la alícuota.
// No valida ni redondea; ver ValidarRenglones y Totales.Redondeados.
func CalcularTotales(renglones []entity.Renglon, esIVAInscripto bool) Totales {
	subtotal := decimal.Zero
	for _, r := range renglones {
		subtotal = subtotal.Add(r.Total())
	}
	iva := subtotal.Mul(Alicuota(esIVAInscripto))
	return Totales{
		Subtotal: subtotal,
		IVA:      iva,
		Total:    subtotal.Add(iva),
	}
}

// Redondeados devuelve los totales a 2 decimales para su presentación.
// El total se recompone con los valores redondeados para que el documento cierre.
func (t Totales) Redondeados() Totales {
	sub := t.Subtotal.Round(2)
	iva := t.IVA.Round(2)
	return Totales{Subtotal: sub, IVA: iva, Total: sub.Add(iva)}
}

// ValidarRenglones verifica cada renglón: cantidad > 0, valor unitario >= 0 y detalle no vacío.
// El error indica el número de renglón (base 1) y envuelve domain.ErrInvalidLineItem.
func ValidarRenglones(renglones []entity.Renglon) error {
	for i, r := range renglones {
		switch {
		case !r.Cantidad.IsPositive():
			return fmt.Errorf("%w: renglón %d: la cantidad debe ser mayor a cero", domain.ErrInvalidLineItem, i+1)
		case r.ValorUnitario.IsNegative():
			return fmt.Errorf("%w: renglón %d: el valor unitario no puede ser negativo", domain.ErrInvalidLineItem, i+1)
		case strings.TrimSpace(r.Detalle) == "":
			return fmt.Errorf("%w: renglón %d: el detalle es obligatorio", domain.ErrInvalidLineItem, i+1)
		}
	}
	return nil
}
