// Package pdf genera la Orden de Compra en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organismo + CUIT    │  N° OC / Pedido / Destino     │
//	│                              │  Lugar y fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EXPEDIENTE: N° / Resolución / Tipo de contratación          │
//	│  PROVEEDOR: Señores / Domicilio / CUIT + nota de propuesta   │
//	│  ZONA + leyenda de facturación                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Renglón | Cant | Concepto | Marca | V.Unit | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Son pesos / Forma de pago / Plazo de entrega               │
//	│  BLOQUE IVA: Neto gravado / IVA / TOTAL                      │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	notaPropuesta = "De acuerdo con la propuesta presentada por ustedes y las reservas consignadas en la presente " +
		"Orden de Compra, sírvase proveer por cuenta de este organismo los artículos que abajo se detallan."
	notaFacturacion = "Esta firma deberá presentar la factura original \"B\" o \"C\" según corresponda en la oficina " +
		"de la zona, acompañada del remito y de esta Orden de Compra. La documentación y los pagos quedan " +
		"sujetos a lo establecido en el Reglamento de Compras."
	notaPie = "* Se deberá adjuntar con la factura la Orden de Compra original sellada y copia de Ingresos Varios."
)

var _ compras.OrdenPDFRenderer = (*MarotoOCGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// Encabezado datos fijos del organismo que emite la OC.
type Encabezado struct {
	Organismo string
	CUIT      string
	Ciudad    string
}

// MarotoOCGenerator implementa compras.OrdenPDFRenderer usando Maroto v2.
type MarotoOCGenerator struct {
	dir string
	enc Encabezado
}

// NewMarotoOCGenerator construye el generador; los PDF se escriben en dir.
func NewMarotoOCGenerator(dir string, enc Encabezado) *MarotoOCGenerator {
	if enc.Ciudad == "" {
		enc.Ciudad = "Mendoza"
	}
	return &MarotoOCGenerator{dir: dir, enc: enc}
}

// RenderOrden escribe el PDF en el directorio de salida y devuelve la ruta.
func (g *MarotoOCGenerator) RenderOrden(ctx context.Context, doc compras.DocumentoOC) (string, error) {
	b, err := g.GenerarPDF(ctx, doc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio de salida: %w", err)
	}
	path := filepath.Join(g.dir, NombreArchivo(doc.Orden.NumeroOC))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return path, nil
}

// GenerarPDF genera el PDF de la OC y devuelve sus bytes.
func (g *MarotoOCGenerator) GenerarPDF(ctx context.Context, doc compras.DocumentoOC) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	oc := doc.Orden
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+oc.NumeroOC, true).
		WithAuthor(g.enc.Organismo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(oc, g.enc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(expedienteRow(oc))
	m.AddRows(proveedorRow(oc))
	m.AddRows(zonaRow(oc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(doc.Renglones) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalTablaRow(doc.Total))

	m.AddRows(resumenRow(oc))
	m.AddRows(ivaRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(notaPie, props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organismo + CUIT (izq) y datos de la OC (der).
func headerRow(oc entity.OrdenCompra, enc Encabezado) core.Row {
	right := func(s string, top float64, bold bool) core.Component {
		p := props.Text{Size: 8, Align: align.Right, Top: top}
		if bold {
			p.Style = fontstyle.Bold
		}
		return text.New(s, p)
	}
	return row.New(24).Add(
		col.New(6).Add(
			text.New(nonEmpty(enc.Organismo, "ORGANISMO"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("C.U.I.T. "+nonEmpty(enc.CUIT, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New("ORIGINAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16,
			}),
		),
		col.New(6).Add(
			right("ORDEN DE COMPRA N°: "+oc.NumeroOC, 1, true),
			right(fmt.Sprintf("PEDIDO N°: %d", oc.NumeroPedido), 6, false),
			right("DESTINO: "+strings.ToUpper(oc.Destino), 11, false),
			right(fmt.Sprintf("%s, %s", enc.Ciudad, FechaLarga(oc.Fecha.Day(), int(oc.Fecha.Month()), oc.Fecha.Year())), 16, false),
		),
	)
}

// expedienteRow: expediente, resolución y tipo de contratación.
func expedienteRow(oc entity.OrdenCompra) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Expte. N°: %d", oc.ExpedienteID), props.Text{Size: 8.5, Top: 2}),
			text.New("Resolución interna N°: "+nonEmpty(oc.ResolucionNro, "—"), props.Text{Size: 8.5, Top: 6.5}),
			text.New("Tipo de Contratación: "+oc.TipoContratacion, props.Text{
				Style: fontstyle.Bold, Size: 8.5, Top: 11,
			}),
		),
	)
}

// proveedorRow: datos del proveedor y nota de propuesta.
func proveedorRow(oc entity.OrdenCompra) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8.5, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(nonEmpty(s, "—"), props.Text{Size: 8.5, Top: top})
	}
	return row.New(26).Add(
		col.New(2).Add(
			label("SEÑORES:", 1),
			label("DOMICILIO:", 5.5),
			label("CUIT:", 10),
		),
		col.New(10).Add(
			value(oc.Senor, 1),
			value(oc.Domicilio, 5.5),
			value(oc.CUIT, 10),
			text.New(notaPropuesta, props.Text{Size: 7, Top: 16, Color: colorGray}),
		),
	)
}

// zonaRow: zona y leyenda de facturación.
func zonaRow(oc entity.OrdenCompra) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("ZONA: "+nonEmpty(oc.DescripcionZona, oc.Destino), props.Text{
				Style: fontstyle.Bold, Size: 8.5, Top: 1,
			}),
			text.New(notaFacturacion, props.Text{Size: 6.5, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Renglón", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Concepto / Detalle", 5, align.Left),
		h("Marca", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableDetailRows: una fila por renglón.
func tableDetailRows(renglones []entity.Renglon) []core.Row {
	result := make([]core.Row, 0, len(renglones))
	for _, r := range renglones {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Nro),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				r.Cantidad.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				r.Detalle,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(r.Marca, "-"),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				FormatMoney(r.ValorUnitario),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				FormatMoney(r.Total()),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalTablaRow(total decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(2).Add(text.New(FormatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// resumenRow: son pesos, forma de pago y plazo de entrega.
func resumenRow(oc entity.OrdenCompra) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Top: top})
	}
	return row.New(16).Add(
		col.New(3).Add(
			label("Son Pesos:", 2),
			label("Forma de Pago:", 6.5),
			label("Plazo de Entrega:", 11),
		),
		col.New(9).Add(
			value(oc.TotalEnLetras, 2),
			value(oc.FormaPago, 6.5),
			value(oc.PlazoEntrega, 11),
		),
	)
}

// ivaRow: bloque de IVA alineado a la derecha.
func ivaRow(doc compras.DocumentoOC) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	titulo := "IVA NO INSCRIPTO"
	if doc.Orden.EsIVAInscripto {
		titulo = "IVA RESPONSABLE INSCRIPTO"
	}
	return row.New(26).Add(
		col.New(4).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(
			label("Importe Neto Gravado:"),
			label("IVA "+PorcentajeAlicuota(doc.Alicuota)+":"),
			grand("TOTAL:"),
		),
		col.New(4).Add(
			value(FormatMoney(doc.Subtotal)),
			value(FormatMoney(doc.IVA)),
			grand(FormatMoney(doc.Total)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FechaLarga devuelve la fecha en español, ej. "14 de marzo de 2026".
func FechaLarga(dia, mes, anio int) string {
	if mes < 1 || mes > 12 {
		return fmt.Sprintf("%02d/%02d/%d", dia, mes, anio)
	}
	return fmt.Sprintf("%d de %s de %d", dia, meses[mes-1], anio)
}

// FormatMoney formatea un importe con separador de miles "." y decimales ",".
// Ej: 1234567.891 → "$ 1.234.567,89"
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	entero, dec, _ := strings.Cut(s, ".")
	out := "$ " + groupThousands(entero) + "," + dec
	if neg {
		return "-" + out
	}
	return out
}

// PorcentajeAlicuota convierte 0.105 en "10,50%".
func PorcentajeAlicuota(a decimal.Decimal) string {
	return strings.Replace(a.Shift(2).StringFixed(2), ".", ",", 1) + "%"
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

var nombreInvalido = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// NombreArchivo arma un nombre de archivo seguro a partir del número de OC ("01/2026" → "OC_01-2026.pdf").
func NombreArchivo(numeroOC string) string {
	base := nombreInvalido.ReplaceAllString(strings.TrimSpace(numeroOC), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "sin-numero"
	}
	return "OC_" + base + ".pdf"
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
