package compras

import (
	"context"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ContadorTxRunner ejecuta fn dentro de una transacción con el repo de contadores atado a ella.
// Si fn retorna error no se persiste ningún incremento.
type ContadorTxRunner interface {
	RunContadores(ctx context.Context, fn func(contadores repository.ContadorRepository) error) error
}

// OrdenTxRunner ejecuta fn dentro de una transacción con el repo de órdenes atado a ella.
type OrdenTxRunner interface {
	RunOrdenes(ctx context.Context, fn func(ordenes repository.OrdenCompraRepository) error) error
}

// Asignador entrega la numeración de una OC para un período.
type Asignador interface {
	Asignar(ctx context.Context, periodo string) (Numeracion, error)
}

// Metricas contadores de observabilidad del circuito de OC.
type Metricas interface {
	PreparacionOK()
	PreparacionFallida(motivo string)
	AsignacionFallida()
	NumeracionHuerfana(periodo string)
	OrdenCreada()
}

// DocumentoOC es todo lo que necesita el renderer para dibujar una OC aprobada.
type DocumentoOC struct {
	Orden     entity.OrdenCompra
	Renglones []entity.Renglon
	// Subtotal, IVA y Total ya redondeados a 2 decimales.
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
	Alicuota decimal.Decimal
}

// OrdenPDFRenderer escribe el PDF de la OC y devuelve la ruta del archivo.
type OrdenPDFRenderer interface {
	RenderOrden(ctx context.Context, doc DocumentoOC) (string, error)
}

// OrdenesExporter escribe una planilla con el listado de órdenes y devuelve la ruta del archivo.
type OrdenesExporter interface {
	ExportarOrdenes(ctx context.Context, ordenes []*entity.OrdenCompra) (string, error)
}

type metricasNop struct{}

func (metricasNop) PreparacionOK()            {}
func (metricasNop) PreparacionFallida(string) {}
func (metricasNop) AsignacionFallida()        {}
func (metricasNop) NumeracionHuerfana(string) {}
func (metricasNop) OrdenCreada()              {}

func metricasOrNop(m Metricas) Metricas {
	if m == nil {
		return metricasNop{}
	}
	return m
}
