package report

import (
	"io"
	"time"
)

// Color RGB 0-255.
type Color struct {
	R, G, B int
}

// Paleta del reporte.
var (
	ColorBlack       = Color{0, 0, 0}
	ColorWhite       = Color{255, 255, 255}
	ColorStripe      = Color{249, 250, 251} // #f9fafb filas impares y cajas de resumen
	ColorHeaderFill  = Color{243, 244, 246} // #f3f4f6
	ColorBorderLight = Color{229, 231, 235} // #e5e7eb
)

// RowFill tono de fondo de la fila i (base 0): blanco en pares, gris claro en impares.
func RowFill(i int) Color {
	if i%2 == 0 {
		return ColorWhite
	}
	return ColorStripe
}

// Align alineación horizontal del texto dentro de su ancho.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// TextStyle estilo de un bloque de texto. La familia es siempre la del
// Measurer, de modo que lo dibujado ocupa lo que se midió.
type TextStyle struct {
	Size  float64
	Align Align
	Color Color
}

// Renderer lienzo paginado donde se emiten las operaciones de dibujo. Las
// coordenadas son relativas a la página actual.
//
// Finish es terminal: dibujar después de Finish es un error de programación (panic).
type Renderer interface {
	DrawBox(box LayoutBox, fill, stroke *Color)
	// DrawText dibuja líneas ya partidas por el motor de maquetación a partir de (x, y).
	DrawText(lines []string, x, y, width float64, style TextStyle)
	NewPage()
	PageIndex() int
	Finish(w io.Writer) error
}

// DocumentMeta metadatos del documento generado.
type DocumentMeta struct {
	Title     string
	Author    string
	Subject   string
	Keywords  string
	CreatedAt time.Time
}
