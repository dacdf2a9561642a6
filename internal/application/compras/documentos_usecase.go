package compras

import (
	"context"
	"fmt"

	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
)

// paginaExportacion órdenes leídas por consulta al armar la planilla.
const paginaExportacion = 500

// DocumentosUseCase genera el PDF de una OC y la planilla de órdenes.
type DocumentosUseCase struct {
	ordenes  *OrdenCompraUseCase
	pdf      OrdenPDFRenderer
	exporter OrdenesExporter
}

// NewDocumentosUseCase construye el caso de uso.
func NewDocumentosUseCase(ordenes *OrdenCompraUseCase, pdf OrdenPDFRenderer, exporter OrdenesExporter) *DocumentosUseCase {
	return &DocumentosUseCase{ordenes: ordenes, pdf: pdf, exporter: exporter}
}

// RenderPDF dibuja la OC aprobada por el usuario (sin persistirla) y devuelve la ruta del PDF.
func (uc *DocumentosUseCase) RenderPDF(ctx context.Context, in dto.CrearOrdenCompraRequest) (*dto.DocumentoResponse, error) {
	doc, err := uc.ordenes.armar(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, doc)
}

// RenderPDFByID dibuja una OC ya guardada.
func (uc *DocumentosUseCase) RenderPDFByID(ctx context.Context, id string) (*dto.DocumentoResponse, error) {
	oc, renglones, err := uc.ordenes.cargar(ctx, id)
	if err != nil {
		return nil, err
	}
	tot := domcompras.Totales{Subtotal: oc.Subtotal, IVA: oc.IVA, Total: oc.Total}.Redondeados()
	return uc.render(ctx, DocumentoOC{
		Orden:     *oc,
		Renglones: renglones,
		Subtotal:  tot.Subtotal,
		IVA:       tot.IVA,
		Total:     tot.Total,
		Alicuota:  domcompras.Alicuota(oc.EsIVAInscripto),
	})
}

// ExportarOrdenes escribe la planilla con todas las órdenes y devuelve su ruta.
func (uc *DocumentosUseCase) ExportarOrdenes(ctx context.Context) (*dto.DocumentoResponse, error) {
	ordenes := []*entity.OrdenCompra{}
	for offset := 0; ; offset += paginaExportacion {
		pagina, err := uc.ordenes.ordenes.List(ctx, paginaExportacion, offset)
		if err != nil {
			return nil, fmt.Errorf("exportar: listar órdenes (offset %d): %w", offset, err)
		}
		ordenes = append(ordenes, pagina...)
		if len(pagina) < paginaExportacion {
			break
		}
	}
	path, err := uc.exporter.ExportarOrdenes(ctx, ordenes)
	if err != nil {
		return nil, fmt.Errorf("exportar: generar planilla: %w", err)
	}
	return &dto.DocumentoResponse{Path: path}, nil
}

func (uc *DocumentosUseCase) render(ctx context.Context, doc DocumentoOC) (*dto.DocumentoResponse, error) {
	path, err := uc.pdf.RenderOrden(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return &dto.DocumentoResponse{Path: path}, nil
}
