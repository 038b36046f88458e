package report

import (
	"fmt"
	"strings"
)

// Geometría fija del reporte (puntos PDF, A4 vertical).
const (
	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 50.0
	// BodyBottom es el límite inferior para colocar filas de la tabla.
	BodyBottom = 700.0

	CellPadding     = 5.0  // margen horizontal a cada lado de la celda
	VerticalPadding = 20.0 // alto extra de cada fila (10 arriba, 10 abajo)
	LineHeightRatio = 1.2
)

// Measurer mide el ancho de un texto con un tamaño de fuente dado.
// Un error indica un glifo que la fuente no puede representar.
type Measurer interface {
	StringWidth(text string, fontSize float64) (float64, error)
}

// Column definición de una columna de la tabla; el ancho es fijo por reporte.
type Column struct {
	Key   string
	Title string
	Width float64
}

// ProductColumns columnas de la tabla de productos (contrato fijo de anchos).
func ProductColumns() []Column {
	return []Column{
		{Key: "name", Title: "Name", Width: 120},
		{Key: "price", Title: "Price", Width: 80},
		{Key: "stock", Title: "Stock", Width: 60},
		{Key: "category", Title: "Category", Width: 100},
		{Key: "supplier", Title: "Supplier", Width: 120},
	}
}

// LayoutBox geometría efímera de una celda, fila o caja.
type LayoutBox struct {
	X, Y, Width, Height float64
}

// Bottom borde inferior de la caja.
func (b LayoutBox) Bottom() float64 { return b.Y + b.Height }

// PageCursor posición vertical actual y página en curso. Se pasa por valor:
// Place devuelve el cursor siguiente en lugar de mutar estado compartido.
type PageCursor struct {
	Y         float64
	PageIndex int
}

// CellLayout texto ya partido en líneas y su posición horizontal.
type CellLayout struct {
	X     float64 // inicio del texto (ya incluye CellPadding)
	Width float64 // ancho útil del texto
	Lines []string
}

// RowLayout geometría completa de una fila, calculada antes de dibujar.
type RowLayout struct {
	Height   float64
	FontSize float64
	Cells    []CellLayout
}

// TextTop desplazamiento vertical del texto dentro de la fila.
func (r RowLayout) TextTop() float64 { return VerticalPadding / 2 }

// Engine motor de maquetación de la tabla. Sin estado mutable: seguro de
// reutilizar dentro de un mismo reporte; el Measurer decide si se comparte.
type Engine struct {
	measurer Measurer
	columns  []Column
	left     float64
}

// NewEngine construye el motor con las columnas dadas, alineadas al margen izquierdo.
func NewEngine(measurer Measurer, columns []Column) *Engine {
	return &Engine{measurer: measurer, columns: columns, left: Margin}
}

// Columns devuelve las columnas configuradas.
func (e *Engine) Columns() []Column { return e.columns }

// TableWidth suma de los anchos de columna.
func (e *Engine) TableWidth() float64 {
	var w float64
	for _, c := range e.columns {
		w += c.Width
	}
	return w
}

// ColumnOffsets devuelve la X absoluta de inicio de cada columna.
func (e *Engine) ColumnOffsets() []float64 {
	offsets := make([]float64, len(e.columns))
	x := e.left
	for i, c := range e.columns {
		offsets[i] = x
		x += c.Width
	}
	return offsets
}

// LineHeight alto de una línea de texto para el tamaño de fuente dado.
func LineHeight(fontSize float64) float64 { return fontSize * LineHeightRatio }

// MeasureWrappedHeight alto que ocupa text envuelto en width.
func (e *Engine) MeasureWrappedHeight(text string, width, fontSize float64) (float64, error) {
	lines, err := e.Wrap(text, width, fontSize)
	if err != nil {
		return 0, err
	}
	return float64(len(lines)) * LineHeight(fontSize), nil
}

// ComputeRowHeight alto de la fila: la celda más alta más el padding vertical.
func (e *Engine) ComputeRowHeight(cells []string, fontSize float64) (float64, error) {
	row, err := e.LayoutRow(cells, fontSize)
	if err != nil {
		return 0, err
	}
	return row.Height, nil
}

// LayoutRow calcula toda la geometría de la fila (líneas por celda y alto)
// sin tocar el lienzo. cells debe tener una entrada por columna.
func (e *Engine) LayoutRow(cells []string, fontSize float64) (RowLayout, error) {
	if len(cells) != len(e.columns) {
		return RowLayout{}, fmt.Errorf("layout: %d celdas para %d columnas", len(cells), len(e.columns))
	}
	offsets := e.ColumnOffsets()
	row := RowLayout{FontSize: fontSize, Cells: make([]CellLayout, len(cells))}
	var tallest float64
	for i, text := range cells {
		width := e.columns[i].Width - 2*CellPadding
		lines, err := e.Wrap(text, width, fontSize)
		if err != nil {
			return RowLayout{}, fmt.Errorf("layout: columna %s: %w", e.columns[i].Key, err)
		}
		if h := float64(len(lines)) * LineHeight(fontSize); h > tallest {
			tallest = h
		}
		row.Cells[i] = CellLayout{X: offsets[i] + CellPadding, Width: width, Lines: lines}
	}
	row.Height = tallest + VerticalPadding
	return row, nil
}

// LayoutHeader maquetación de la fila de títulos.
func (e *Engine) LayoutHeader(fontSize float64) (RowLayout, error) {
	titles := make([]string, len(e.columns))
	for i, c := range e.columns {
		titles[i] = c.Title
	}
	return e.LayoutRow(titles, fontSize)
}

// Place decide dónde va una fila de alto height. Si no cabe antes de BodyBottom
// y la página ya tiene contenido, salta a una página nueva (broke=true) y la fila
// queda en el margen superior. Una fila más alta que el cuerpo de la página se
// coloca igual, sobredimensionada, en su propia página.
func (e *Engine) Place(cursor PageCursor, height float64) (box LayoutBox, next PageCursor, broke bool) {
	if cursor.Y+height > BodyBottom && cursor.Y > Margin {
		cursor = PageCursor{Y: Margin, PageIndex: cursor.PageIndex + 1}
		broke = true
	}
	box = LayoutBox{X: e.left, Y: cursor.Y, Width: e.TableWidth(), Height: height}
	cursor.Y += height
	return box, cursor, broke
}

// Wrap parte text en líneas que caben en width. Respeta saltos de línea
// explícitos y corta por carácter las palabras más anchas que la columna.
func (e *Engine) Wrap(text string, width, fontSize float64) ([]string, error) {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			w, err := e.measurer.StringWidth(candidate, fontSize)
			if err != nil {
				return nil, err
			}
			if w <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			parts, err := e.breakWord(word, width, fontSize)
			if err != nil {
				return nil, err
			}
			lines = append(lines, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// breakWord corta word en trozos que caben en width; siempre devuelve al menos uno.
// Un único carácter más ancho que la columna queda solo en su línea.
func (e *Engine) breakWord(word string, width, fontSize float64) ([]string, error) {
	var parts []string
	chunk := ""
	for _, r := range word {
		candidate := chunk + string(r)
		w, err := e.measurer.StringWidth(candidate, fontSize)
		if err != nil {
			return nil, err
		}
		if w > width && chunk != "" {
			parts = append(parts, chunk)
			chunk = string(r)
			continue
		}
		chunk = candidate
	}
	return append(parts, chunk), nil
}
