// Package pdf genera el reporte de estadísticas mayoristas en PDF.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación  │  Kilos totales + N° puntos   │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: Punto de venta | Zona | Kilos | Pedidos | Prom. | Último | Frec. │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  ÍTEMS SIN COINCIDENCIA: nombre (ocurrencias)                          │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa wholesale.StatsPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	loc *time.Location
}

// NewMarotoPDFGenerator construye el generador. Las fechas se imprimen en loc.
func NewMarotoPDFGenerator(loc *time.Location) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{loc: loc}
}

// GenerateStatsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatsPDF(stats *dto.WholesaleStatsDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estadísticas mayoristas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(stats, g.loc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(stats.Outlets)...)

	if len(stats.Unmatched) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(unmatchedRows(stats.Unmatched)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha (izq) y totales (der).
func headerRow(stats *dto.WholesaleStatsDTO, loc *time.Location) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("ESTADÍSTICAS MAYORISTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+stats.GeneratedAt.In(loc).Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("KILOS TOTALES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(formatThousands(stats.TotalKilos)+" kg", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(fmt.Sprintf("%d puntos de venta", len(stats.Outlets)), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Punto de venta", 3, align.Left),
		h("Zona", 2, align.Left),
		h("Kilos", 1, align.Right),
		h("Pedidos", 1, align.Right),
		h("Prom. kg", 1, align.Right),
		h("Último kg", 1, align.Right),
		h("Frecuencia", 2, align.Left),
		h("Sin match", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por punto de venta, con filas alternadas sombreadas.
func tableRows(outlets []dto.OutletStatsDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(outlets))
	for i, o := range outlets {
		unmatched := 0
		for _, u := range o.Unmatched {
			unmatched += u.Occurrences
		}
		r := row.New(7).Add(
			cell(o.OutletName, 3, align.Left),
			cell(nonEmpty(o.Zone, "Sin zona"), 2, align.Left),
			cell(formatThousands(o.TotalKilos), 1, align.Right),
			cell(strconv.Itoa(o.OrderCount), 1, align.Right),
			cell(formatDecimal(o.AverageKilos), 1, align.Right),
			cell(formatDecimal(o.LastOrderKilos), 1, align.Right),
			cell(o.Frequency.Label, 2, align.Left),
			cell(strconv.Itoa(unmatched), 1, align.Right),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

// unmatchedRows: listado de ítems sin coincidencia en el catálogo.
func unmatchedRows(items []dto.UnmatchedNameDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ÍTEMS SIN COINCIDENCIA EN EL CATÁLOGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%d)", it.Name, it.Occurrences), props.Text{
				Size: 8, Color: colorGray, Top: 0.5, Left: 2,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1500 → "-1.500".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}

// formatDecimal dos decimales con coma. Ej: 1234.5 → "1.234,50".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	n, _ := strconv.Atoi(intPart)
	out := formatThousands(n) + "," + frac
	if n == 0 && strings.HasPrefix(intPart, "-") {
		out = "-" + out
	}
	return out
}
