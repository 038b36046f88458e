package reporting_test

import (
	"errors"
	"io"
	"strings"

	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
)

var errGlyph = errors.New("glifo no medible")

// monoMeasurer cada carácter mide la mitad del tamaño de fuente; '☃' no es medible.
type monoMeasurer struct{}

func (monoMeasurer) StringWidth(text string, fontSize float64) (float64, error) {
	if strings.ContainsRune(text, '☃') {
		return 0, errGlyph
	}
	return float64(len([]rune(text))) * fontSize / 2, nil
}

type boxOp struct {
	box    report.LayoutBox
	fill   *report.Color
	stroke *report.Color
	page   int
}

type textOp struct {
	lines []string
	x, y  float64
	style report.TextStyle
	page  int
}

// recorder lienzo falso que registra cada operación con su página.
type recorder struct {
	boxes     []boxOp
	texts     []textOp
	page      int
	finished  bool
	finishErr error
	meta      report.DocumentMeta
}

func (r *recorder) DrawBox(box report.LayoutBox, fill, stroke *report.Color) {
	if r.finished {
		panic("recorder: dibujo después de Finish")
	}
	r.boxes = append(r.boxes, boxOp{box: box, fill: fill, stroke: stroke, page: r.page})
}

func (r *recorder) DrawText(lines []string, x, y, _ float64, style report.TextStyle) {
	if r.finished {
		panic("recorder: dibujo después de Finish")
	}
	r.texts = append(r.texts, textOp{lines: lines, x: x, y: y, style: style, page: r.page})
}

func (r *recorder) NewPage() { r.page++ }

func (r *recorder) PageIndex() int { return r.page }

func (r *recorder) Finish(w io.Writer) error {
	r.finished = true
	if r.finishErr != nil {
		return r.finishErr
	}
	_, err := io.WriteString(w, "%PDF-fake")
	return err
}

// tableRows cajas de filas de datos (ancho de tabla, borde claro).
func (r *recorder) tableRows() []boxOp {
	var rows []boxOp
	for _, b := range r.boxes {
		if b.box.Width == 480 && b.stroke != nil && *b.stroke == report.ColorBorderLight {
			rows = append(rows, b)
		}
	}
	return rows
}

func (r *recorder) headerRows() []boxOp {
	var rows []boxOp
	for _, b := range r.boxes {
		if b.fill != nil && *b.fill == report.ColorHeaderFill {
			rows = append(rows, b)
		}
	}
	return rows
}

func (r *recorder) textAt(y float64) []string {
	var out []string
	for _, t := range r.texts {
		if t.y == y {
			out = append(out, strings.Join(t.lines, " "))
		}
	}
	return out
}

type fakeBackend struct {
	renderers []*recorder
	finishErr error
}

func (b *fakeBackend) NewRenderer(meta report.DocumentMeta) report.Renderer {
	r := &recorder{meta: meta, finishErr: b.finishErr}
	b.renderers = append(b.renderers, r)
	return r
}

func (b *fakeBackend) NewMeasurer() report.Measurer { return monoMeasurer{} }

func (b *fakeBackend) last() *recorder { return b.renderers[len(b.renderers)-1] }
