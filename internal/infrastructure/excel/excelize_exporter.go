// Package excel exporta el listado de órdenes de compra a una planilla xlsx.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/pkg/clock"
)

// Hoja nombre de la hoja con el listado.
const Hoja = "Ordenes"

// Columnas cabecera de la planilla, en orden.
var Columnas = []string{
	"N° OC", "Pedido", "Fecha", "Expediente", "Proveedor", "CUIT", "Tipo de contratación",
	"Forma de pago", "Subtotal", "IVA", "Total", "Total en letras",
}

var _ compras.OrdenesExporter = (*Exporter)(nil)

// Exporter implementa compras.OrdenesExporter con excelize.
type Exporter struct {
	dir   string
	clock clock.Clock
}

// NewExporter construye el exportador; las planillas se escriben en dir.
func NewExporter(dir string, clk clock.Clock) *Exporter {
	if clk == nil {
		clk = clock.System{}
	}
	return &Exporter{dir: dir, clock: clk}
}

// ExportarOrdenes escribe ordenes_<timestamp>.xlsx y devuelve la ruta.
func (e *Exporter) ExportarOrdenes(ctx context.Context, ordenes []*entity.OrdenCompra) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", Hoja); err != nil {
		return "", fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	cabecera := make([]any, len(Columnas))
	for i, c := range Columnas {
		cabecera[i] = c
	}
	if err := f.SetSheetRow(Hoja, "A1", &cabecera); err != nil {
		return "", fmt.Errorf("excel: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetRowStyle(Hoja, 1, 1, bold); err != nil {
		return "", fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return "", fmt.Errorf("excel: estilo: %w", err)
	}

	for i, oc := range ordenes {
		fila := i + 2
		cell, err := excelize.CoordinatesToCellName(1, fila)
		if err != nil {
			return "", err
		}
		values := []any{
			oc.NumeroOC,
			oc.NumeroPedido,
			oc.Fecha.Format("2006-01-02"),
			oc.ExpedienteID,
			oc.Senor,
			oc.CUIT,
			oc.TipoContratacion,
			oc.FormaPago,
			oc.Subtotal.Round(2).InexactFloat64(),
			oc.IVA.Round(2).InexactFloat64(),
			oc.Subtotal.Round(2).Add(oc.IVA.Round(2)).InexactFloat64(),
			oc.TotalEnLetras,
		}
		if err := f.SetSheetRow(Hoja, cell, &values); err != nil {
			return "", fmt.Errorf("excel: fila %d: %w", fila, err)
		}
	}
	if len(ordenes) > 0 {
		desde, _ := excelize.CoordinatesToCellName(9, 2)
		hasta, _ := excelize.CoordinatesToCellName(11, len(ordenes)+1)
		if err := f.SetCellStyle(Hoja, desde, hasta, money); err != nil {
			return "", fmt.Errorf("excel: estilo importes: %w", err)
		}
	}
	_ = f.SetColWidth(Hoja, "E", "G", 30)
	_ = f.SetColWidth(Hoja, "L", "L", 60)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("excel: crear directorio de salida: %w", err)
	}
	path := filepath.Join(e.dir, "ordenes_"+e.clock.Now().Format("20060102_150405")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("excel: guardar: %w", err)
	}
	return path, nil
}
