package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tope asocia un tipo de contratación con el monto máximo que admite.
// TipoContratacion es único en la tabla.
type Tope struct {
	ID               int64
	TipoContratacion string
	MontoMaximo      decimal.Decimal
	UpdatedAt        time.Time
}
