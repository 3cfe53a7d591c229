// Package pdf genera la hoja de precios de una lista en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la lista + Id │ Vigencia + QR del Id     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Tipo de fórmula / Estado / N° de presentaciones     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Presentación | Costo | Fórmula | $ │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Generada el ... por ...                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
	"github.com/jhoicas/Precios-admin/pkg/formato"
)

var _ usecase.HojaPreciosGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.HojaPreciosGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarHojaPrecios genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarHojaPrecios(_ context.Context, hoja *dto.HojaPrecios) ([]byte, error) {
	if hoja == nil {
		return nil, fmt.Errorf("pdf: hoja de precios vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de precios "+hoja.Lista.DesLista, true).
		WithAuthor(nonEmpty(hoja.GeneradaPor, "precios-admin"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(hoja))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datosRow(hoja))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(hoja.Lineas)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(hoja))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre e id de la lista (izq), vigencia y QR con el id (der).
func headerRow(hoja *dto.HojaPrecios) core.Row {
	l := hoja.Lista
	return row.New(24).Add(
		col.New(7).Add(
			text.New(nonEmpty(l.DesLista, "Lista sin nombre"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lista: "+l.IdListaOK, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New("Vigencia: "+formato.Vigencia(l.FechaExpiraIni.Time, l.FechaExpiraFin.Time), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("HOJA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
		),
		col.New(2).Add(code.NewQr(l.IdListaOK, props.Rect{Percent: 90, Center: true})),
	)
}

// datosRow: tipo de fórmula, estado e instituto.
func datosRow(hoja *dto.HojaPrecios) core.Row {
	estado := "Inactiva"
	if hoja.Lista.Activo {
		estado = "Activa"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA LISTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo de fórmula: %s   |   Estado: %s   |   Instituto: %s   |   Presentaciones: %d",
				nonEmpty(hoja.TipoFormula, "—"),
				estado,
				nonEmpty(hoja.Lista.IdInstitutoOK, "—"),
				len(hoja.Lineas),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de precios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Presentación", 2, align.Left),
		h("Costo", 2, align.Right),
		h("Fórmula", 1, align.Center),
		h("Precio", 2, align.Right),
	)
}

// tableDetailRows: una fila por presentación, con fondo alterno.
func tableDetailRows(lineas []dto.LineaHoja) []core.Row {
	if len(lineas) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("La lista no tiene precios registrados.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(lineas))
	for i, l := range lineas {
		r := row.New(7).Add(
			col.New(2).Add(text.New(l.SKUID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.NombreProducto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.NombrePresentacion, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formato.Moneda(l.CostoIni), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(nonEmpty(l.Formula, "manual"), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formato.Moneda(l.Precio), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
		}
		result = append(result, r)
	}
	return result
}

// footerRow: fecha de generación y usuario.
func footerRow(hoja *dto.HojaPrecios) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Generada el %s por %s. Los precios con fórmula se calculan sobre el costo inicial.",
			formato.Fecha(hoja.GeneradaEn), nonEmpty(hoja.GeneradaPor, "el sistema")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
