package pdf

import (
	"github.com/go-pdf/fpdf"

	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
)

const fontFamily = "Helvetica"

var _ report.Measurer = (*FpdfMeasurer)(nil)

// FpdfMeasurer mide texto con las métricas de Helvetica usando un documento fpdf
// propio, separado del lienzo de dibujo. No es seguro para uso concurrente.
type FpdfMeasurer struct {
	doc *fpdf.Fpdf
}

// NewFpdfMeasurer construye el medidor.
func NewFpdfMeasurer() *FpdfMeasurer {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont(fontFamily, "", 10)
	return &FpdfMeasurer{doc: doc}
}

// StringWidth ancho en puntos de text con el tamaño de fuente indicado.
func (m *FpdfMeasurer) StringWidth(text string, fontSize float64) (float64, error) {
	enc, err := toWinAnsi(text)
	if err != nil {
		return 0, err
	}
	m.doc.SetFontSize(fontSize)
	w := m.doc.GetStringWidth(enc)
	if m.doc.Err() {
		return 0, m.doc.Error()
	}
	return w, nil
}
