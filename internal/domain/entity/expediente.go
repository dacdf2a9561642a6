package entity

import "time"

// Tipos de expediente. Solo los de tipo PAGO pueden originar una orden de compra.
const (
	ExpedienteTipoInfoGov = "INFOGOV"
	ExpedienteTipoGDE     = "GDE"
	ExpedienteTipoInterno = "INTERNO"
	ExpedienteTipoPago    = "PAGO"
	ExpedienteTipoOtro    = "OTRO"
)

// Expediente representa el expediente administrativo del que se origina una OC.
// Los campos OC* son los datos de pago precargados (proveedor, forma de pago, plazo).
type Expediente struct {
	ID            int64
	Numero        string
	Anio          int
	Tipo          string
	Asunto        string
	NroInfoGov    string
	NroGDE        string
	Caratula      string
	ResolucionNro string
	Oficina       string
	Estado        string
	FechaPase     *time.Time

	OCSenor           string
	OCDomicilio       string
	OCCUIT            string
	OCDescripcionZona string
	OCFormaPago       string
	OCPlazoEntrega    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EsPago indica si el expediente es elegible para preparar una orden de compra.
func (e *Expediente) EsPago() bool {
	return e.Tipo == ExpedienteTipoPago
}
