// Package pdf implementa el lienzo del reporte de inventario sobre go-pdf/fpdf.
//
// El motor de maquetación decide posiciones y saltos de página; este paquete
// sólo ejecuta las operaciones de dibujo. Por eso el salto automático de fpdf
// está desactivado y los márgenes de celda son cero.
package pdf

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
)

const lineWidth = 1.0

var _ report.Renderer = (*FpdfRenderer)(nil)

// FpdfRenderer lienzo A4 en puntos. Una instancia por reporte.
type FpdfRenderer struct {
	doc      *fpdf.Fpdf
	page     int
	finished bool
}

// NewFpdfRenderer crea el documento con la primera página ya abierta.
func NewFpdfRenderer(meta report.DocumentMeta) *FpdfRenderer {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(report.Margin, report.Margin, report.Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCellMargin(0)
	doc.SetTitle(meta.Title, true)
	doc.SetAuthor(meta.Author, true)
	doc.SetSubject(meta.Subject, true)
	doc.SetKeywords(meta.Keywords, true)
	doc.SetCreator("quickcart-inventory", true)
	if !meta.CreatedAt.IsZero() {
		doc.SetCreationDate(meta.CreatedAt)
	}
	doc.SetFont(fontFamily, "", 10)
	doc.SetLineWidth(lineWidth)
	doc.AddPage()
	return &FpdfRenderer{doc: doc}
}

// DrawBox rellena y/o bordea la caja. Sin colores no dibuja nada.
func (r *FpdfRenderer) DrawBox(box report.LayoutBox, fill, stroke *report.Color) {
	r.mustBeOpen()
	style := ""
	if fill != nil {
		r.doc.SetFillColor(fill.R, fill.G, fill.B)
		style += "F"
	}
	if stroke != nil {
		r.doc.SetDrawColor(stroke.R, stroke.G, stroke.B)
		style += "D"
	}
	if style == "" {
		return
	}
	r.doc.Rect(box.X, box.Y, box.Width, box.Height, style)
}

// DrawText dibuja una línea por renglón de alto LineHeight(style.Size).
// Un carácter no representable deja el documento en error; Finish lo devuelve.
func (r *FpdfRenderer) DrawText(lines []string, x, y, width float64, style report.TextStyle) {
	r.mustBeOpen()
	align := style.Align
	if align == "" {
		align = report.AlignLeft
	}
	r.doc.SetFont(fontFamily, "", style.Size)
	r.doc.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	lh := report.LineHeight(style.Size)
	for i, line := range lines {
		enc, err := toWinAnsi(line)
		if err != nil {
			r.doc.SetError(err)
			return
		}
		r.doc.SetXY(x, y+float64(i)*lh)
		r.doc.CellFormat(width, lh, enc, "", 0, string(align), false, 0, "")
	}
}

// NewPage abre una página nueva; las coordenadas vuelven a ser locales a ella.
func (r *FpdfRenderer) NewPage() {
	r.mustBeOpen()
	r.doc.AddPage()
	r.page++
}

// PageIndex índice (base 0) de la página actual.
func (r *FpdfRenderer) PageIndex() int { return r.page }

// Finish cierra el documento y lo escribe en w. Operación terminal.
func (r *FpdfRenderer) Finish(w io.Writer) error {
	r.mustBeOpen()
	r.finished = true
	return r.doc.Output(w)
}

func (r *FpdfRenderer) mustBeOpen() {
	if r.finished {
		panic("pdf: renderer usado después de Finish")
	}
}
