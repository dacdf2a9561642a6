package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contadores de numeración por período.
const (
	ContadorOrden  = "orden"
	ContadorPedido = "pedido"
)

// Valores por defecto de una OC.
const (
	DestinoDefault      = "ZONA RIEGO MALARGUE"
	FormaPagoDefault    = "Transferencia"
	PlazoEntregaDefault = "-"
)

// Renglon es una línea de la orden de compra.
type Renglon struct {
	ID            string
	OrdenCompraID string
	Nro           int
	Cantidad      decimal.Decimal
	Detalle       string
	Marca         string
	ValorUnitario decimal.Decimal
}

// Total devuelve cantidad × valor unitario sin redondeo.
func (r Renglon) Total() decimal.Decimal {
	return r.Cantidad.Mul(r.ValorUnitario)
}

// BorradorOC es el borrador que devuelve la preparación de una OC.
// Se entrega por valor: quien lo recibe puede editarlo sin afectar al servicio.
type BorradorOC struct {
	Expediente       Expediente
	NumeroOC         string
	NumeroPedido     int64
	Fecha            time.Time
	Destino          string
	FormaPago        string
	PlazoEntrega     string
	EsIVAInscripto   bool
	TipoContratacion string
	Subtotal         decimal.Decimal
	IVA              decimal.Decimal
	Total            decimal.Decimal
	TotalEnLetras    string
}

// OrdenCompra representa la cabecera de una orden de compra persistida.
type OrdenCompra struct {
	ID               string
	ExpedienteID     int64
	NumeroOC         string
	NumeroPedido     int64
	Fecha            time.Time
	Destino          string
	ResolucionNro    string
	FormaPago        string
	PlazoEntrega     string
	EsIVAInscripto   bool
	TipoContratacion string
	Senor            string
	Domicilio        string
	CUIT             string
	DescripcionZona  string
	Subtotal         decimal.Decimal
	IVA              decimal.Decimal
	Total            decimal.Decimal
	TotalEnLetras    string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
