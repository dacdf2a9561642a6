package dto

import "github.com/shopspring/decimal"

// RenglonRequest línea de la orden de compra editada por el usuario.
type RenglonRequest struct {
	Cantidad      decimal.Decimal `json:"cantidad"`
	Detalle       string          `json:"detalle"`
	Marca         string          `json:"marca,omitempty"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// RecalcularRequest body para POST /api/ordenes-compra/recalcular.
type RecalcularRequest struct {
	Renglones      []RenglonRequest `json:"renglones"`
	EsIVAInscripto bool             `json:"es_iva_inscripto"`
}

// TotalesResponse totales exactos y su versión redondeada a 2 decimales.
type TotalesResponse struct {
	Alicuota           decimal.Decimal `json:"alicuota"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	IVA                decimal.Decimal `json:"iva"`
	Total              decimal.Decimal `json:"total"`
	SubtotalRedondeado decimal.Decimal `json:"subtotal_redondeado"`
	IVARedondeado      decimal.Decimal `json:"iva_redondeado"`
	TotalRedondeado    decimal.Decimal `json:"total_redondeado"`
}

// RecalcularResponse vista previa: totales, tipo de contratación y total en letras.
type RecalcularResponse struct {
	Totales          TotalesResponse `json:"totales"`
	TipoContratacion string          `json:"tipo_contratacion"`
	TotalEnLetras    string          `json:"total_en_letras"`
	Advertencia      string          `json:"advertencia,omitempty"` // renglón incompleto; la vista previa igual se calcula
}

// ExpedienteResponse datos del expediente incluidos en el borrador.
type ExpedienteResponse struct {
	ID                int64  `json:"id"`
	Numero            string `json:"numero"`
	Anio              int    `json:"anio"`
	Tipo              string `json:"tipo"`
	Asunto            string `json:"asunto"`
	NroInfoGov        string `json:"nro_infogov,omitempty"`
	NroGDE            string `json:"nro_gde,omitempty"`
	Caratula          string `json:"caratula,omitempty"`
	ResolucionNro     string `json:"resolucion_nro,omitempty"`
	OCSenor           string `json:"oc_senor,omitempty"`
	OCDomicilio       string `json:"oc_domicilio,omitempty"`
	OCCUIT            string `json:"oc_cuit,omitempty"`
	OCDescripcionZona string `json:"oc_descripcion_zona,omitempty"`
}

// BorradorOCResponse respuesta de POST /api/expedientes/:id/orden-compra/preparar.
type BorradorOCResponse struct {
	Expediente       ExpedienteResponse `json:"expediente"`
	NumeroOC         string             `json:"numero_oc"`
	NumeroPedido     int64              `json:"numero_pedido"`
	Fecha            string             `json:"fecha"` // YYYY-MM-DD
	Destino          string             `json:"destino"`
	FormaPago        string             `json:"forma_pago"`
	PlazoEntrega     string             `json:"plazo_entrega"`
	EsIVAInscripto   bool               `json:"es_iva_inscripto"`
	TipoContratacion string             `json:"tipo_contratacion"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	IVA              decimal.Decimal    `json:"iva"`
	Total            decimal.Decimal    `json:"total"`
	TotalEnLetras    string             `json:"total_en_letras"`
}

// CrearOrdenCompraRequest body para POST /api/ordenes-compra y POST /api/ordenes-compra/pdf.
// Es el borrador ya revisado por el usuario más los renglones.
type CrearOrdenCompraRequest struct {
	ExpedienteID    int64            `json:"expediente_id"`
	NumeroOC        string           `json:"numero_oc"`
	NumeroPedido    int64            `json:"numero_pedido"`
	Fecha           string           `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
	Destino         string           `json:"destino,omitempty"`
	ResolucionNro   string           `json:"resolucion_nro,omitempty"`
	FormaPago       string           `json:"forma_pago,omitempty"`
	PlazoEntrega    string           `json:"plazo_entrega,omitempty"`
	EsIVAInscripto  bool             `json:"es_iva_inscripto"`
	Senor           string           `json:"senor,omitempty"`
	Domicilio       string           `json:"domicilio,omitempty"`
	CUIT            string           `json:"cuit,omitempty"`
	DescripcionZona string           `json:"descripcion_zona,omitempty"`
	Renglones       []RenglonRequest `json:"renglones"`
}

// RenglonResponse línea de la orden con su total.
type RenglonResponse struct {
	ID            string          `json:"id,omitempty"`
	Nro           int             `json:"nro"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Detalle       string          `json:"detalle"`
	Marca         string          `json:"marca,omitempty"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Total         decimal.Decimal `json:"total"`
}

// OrdenCompraResponse orden de compra con renglones para GET /api/ordenes-compra/:id.
type OrdenCompraResponse struct {
	ID               string            `json:"id"`
	ExpedienteID     int64             `json:"expediente_id"`
	NumeroOC         string            `json:"numero_oc"`
	NumeroPedido     int64             `json:"numero_pedido"`
	Fecha            string            `json:"fecha"`
	Destino          string            `json:"destino"`
	ResolucionNro    string            `json:"resolucion_nro,omitempty"`
	FormaPago        string            `json:"forma_pago"`
	PlazoEntrega     string            `json:"plazo_entrega"`
	EsIVAInscripto   bool              `json:"es_iva_inscripto"`
	TipoContratacion string            `json:"tipo_contratacion"`
	Senor            string            `json:"senor,omitempty"`
	Domicilio        string            `json:"domicilio,omitempty"`
	CUIT             string            `json:"cuit,omitempty"`
	DescripcionZona  string            `json:"descripcion_zona,omitempty"`
	Subtotal         decimal.Decimal   `json:"subtotal"`
	IVA              decimal.Decimal   `json:"iva"`
	Total            decimal.Decimal   `json:"total"`
	TotalEnLetras    string            `json:"total_en_letras"`
	Renglones        []RenglonResponse `json:"renglones,omitempty"`
}

// OrdenCompraListResponse listado paginado de órdenes.
type OrdenCompraListResponse struct {
	Items []OrdenCompraResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// TopeResponse fila de la tabla de topes.
type TopeResponse struct {
	ID               int64           `json:"id"`
	TipoContratacion string          `json:"tipo_contratacion"`
	MontoMaximo      decimal.Decimal `json:"monto_maximo"`
}

// UpdateTopeRequest body para PUT /api/config-topes/:tipo.
type UpdateTopeRequest struct {
	MontoMaximo decimal.Decimal `json:"monto_maximo"`
}

// DocumentoResponse ruta del archivo generado (PDF o planilla).
type DocumentoResponse struct {
	Path string `json:"path"`
}

// SemaforoResponse estado de vencimiento de una licencia.
type SemaforoResponse struct {
	Vence         string `json:"vence"`
	Estado        string `json:"estado"`
	Dias          int    `json:"dias"`
	DiasRestantes int    `json:"dias_restantes"`
	Vencida       bool   `json:"vencida"`
}
