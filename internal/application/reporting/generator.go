// Package reporting orquesta la generación del reporte PDF de inventario:
// agregación → bloque de título y resumen → tabla paginada → pie → documento.
package reporting

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/quickcart-inventory/internal/domain"
	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
)

const (
	Filename  = "products.pdf"
	MediaType = "application/pdf"

	reportTitle = "Product Inventory Report"

	// Posiciones fijas del bloque superior (puntos).
	titleTop       = 50.0
	dateTop        = 90.0
	summaryTop     = 115.0
	statsTop       = 150.0
	statsWidth     = 100.0
	statsHeight    = 60.0
	statsGap       = 20.0
	detailsTop     = 300.0
	tableTop       = 350.0
	footerOffset   = 20.0
	footerLineStep = 15.0

	headerFontSize = 12.0
	rowFontSize    = 10.0
	placeholder    = "-"
)

// Options textos configurables del reporte.
type Options struct {
	StoreName      string
	CurrencyPrefix string
	Author         string
	// Now reloj inyectable; por defecto time.Now.
	Now func() time.Time
}

// Result documento terminado más los datos con los que se construyó.
type Result struct {
	Document []byte
	Stats    report.InventoryStats
	Rows     int
	Pages    int
}

// Generator orquestador del reporte. No guarda estado entre llamadas: el cursor
// de página, el lienzo y el medidor viven dentro de cada Generate.
type Generator struct {
	backend DocumentBackend
	opts    Options
}

// NewGenerator construye el orquestador.
func NewGenerator(backend DocumentBackend, opts Options) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{backend: backend, opts: opts}
}

// Generate produce el PDF completo para records (en el orden recibido).
// Ante cualquier fallo devuelve domain.ErrReportGenerationFailed envolviendo la
// causa y ningún documento parcial. Se puede cancelar entre filas vía ctx.
func (g *Generator) Generate(ctx context.Context, reportID string, records []report.ProductRecord) (*Result, error) {
	now := g.opts.Now()
	stats := report.Aggregate(records)

	renderer := g.backend.NewRenderer(report.DocumentMeta{
		Title:     reportTitle,
		Author:    g.opts.Author,
		Subject:   g.opts.StoreName,
		Keywords:  "inventory report " + reportID,
		CreatedAt: now,
	})
	p := &pass{
		renderer: renderer,
		engine:   report.NewEngine(g.backend.NewMeasurer(), report.ProductColumns()),
		opts:     g.opts,
		now:      now,
	}

	if err := p.drawTitleBlock(stats); err != nil {
		return nil, fail("bloque de título", err)
	}
	cursor, err := p.drawTableHeader()
	if err != nil {
		return nil, fail("encabezado de tabla", err)
	}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, fail("cancelado", err)
		}
		cursor, err = p.drawRow(cursor, i, rec)
		if err != nil {
			return nil, fail(fmt.Sprintf("fila %d", i), err)
		}
	}
	if err := p.drawFooter(cursor); err != nil {
		return nil, fail("pie", err)
	}

	var buf bytes.Buffer
	if err := renderer.Finish(&buf); err != nil {
		return nil, fail("finalizar documento", err)
	}
	return &Result{
		Document: buf.Bytes(),
		Stats:    stats,
		Rows:     len(records),
		Pages:    cursor.PageIndex + 1,
	}, nil
}

func fail(stage string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrReportGenerationFailed, stage, err)
}

// pass estado de una única pasada de dibujo.
type pass struct {
	renderer report.Renderer
	engine   *report.Engine
	opts     Options
	now      time.Time
}

func contentWidth() float64 { return report.PageWidth - 2*report.Margin }

// text envuelve s en width y lo dibuja: medir primero, dibujar después.
func (p *pass) text(s string, x, y, width float64, style report.TextStyle) error {
	lines, err := p.engine.Wrap(s, width, style.Size)
	if err != nil {
		return err
	}
	p.renderer.DrawText(lines, x, y, width, style)
	return nil
}

func (p *pass) drawTitleBlock(stats report.InventoryStats) error {
	black := report.ColorBlack
	if err := p.text(reportTitle, report.Margin, titleTop, contentWidth(),
		report.TextStyle{Size: 24, Align: report.AlignCenter, Color: black}); err != nil {
		return err
	}
	if err := p.text("Generated on: "+p.dateStamp(), report.Margin, dateTop, contentWidth(),
		report.TextStyle{Size: 10, Align: report.AlignRight, Color: black}); err != nil {
		return err
	}
	if err := p.text("Inventory Summary", report.Margin, summaryTop, contentWidth(),
		report.TextStyle{Size: 16, Align: report.AlignCenter, Color: black}); err != nil {
		return err
	}

	fill, stroke := report.ColorStripe, report.ColorBorderLight
	for i, stat := range p.statBoxes(stats) {
		x := report.Margin + float64(i)*(statsWidth+statsGap)
		p.renderer.DrawBox(report.LayoutBox{X: x, Y: statsTop, Width: statsWidth, Height: statsHeight}, &fill, &stroke)
		inner := statsWidth - 2*report.CellPadding
		if err := p.text(stat.title, x+report.CellPadding, statsTop+10, inner,
			report.TextStyle{Size: 10, Color: black}); err != nil {
			return err
		}
		if err := p.text(stat.value, x+report.CellPadding, statsTop+30, inner,
			report.TextStyle{Size: 14, Color: black}); err != nil {
			return err
		}
	}
	return nil
}

type statBox struct {
	title string
	value string
}

func (p *pass) statBoxes(stats report.InventoryStats) []statBox {
	return []statBox{
		{"Total Products", strconv.Itoa(stats.TotalProducts)},
		{"Total Stock", strconv.FormatInt(stats.TotalStock, 10)},
		{"Avg. Price", p.opts.CurrencyPrefix + stats.AveragePrice.StringFixed(2)},
		{"Total Value", p.opts.CurrencyPrefix + stats.TotalValue.StringFixed(2)},
		{"Categories", strconv.Itoa(stats.CategoryCount)},
	}
}

// drawTableHeader dibuja la fila de títulos; nunca se reubica por salto de página.
func (p *pass) drawTableHeader() (report.PageCursor, error) {
	if err := p.text("Product Details", report.Margin, detailsTop, contentWidth(),
		report.TextStyle{Size: 16, Align: report.AlignCenter, Color: report.ColorBlack}); err != nil {
		return report.PageCursor{}, err
	}
	row, err := p.engine.LayoutHeader(headerFontSize)
	if err != nil {
		return report.PageCursor{}, err
	}
	box := report.LayoutBox{X: report.Margin, Y: tableTop, Width: p.engine.TableWidth(), Height: row.Height}
	fill, stroke := report.ColorHeaderFill, report.ColorBlack
	p.renderer.DrawBox(box, &fill, &stroke)
	p.drawCells(row, box)
	return report.PageCursor{Y: box.Bottom(), PageIndex: p.renderer.PageIndex()}, nil
}

func (p *pass) drawRow(cursor report.PageCursor, index int, rec report.ProductRecord) (report.PageCursor, error) {
	row, err := p.engine.LayoutRow(p.cellValues(rec), rowFontSize)
	if err != nil {
		return cursor, err
	}
	box, next, broke := p.engine.Place(cursor, row.Height)
	if broke {
		p.renderer.NewPage()
	}
	fill, stroke := report.RowFill(index), report.ColorBorderLight
	p.renderer.DrawBox(box, &fill, &stroke)
	p.drawCells(row, box)
	return next, nil
}

func (p *pass) drawCells(row report.RowLayout, box report.LayoutBox) {
	style := report.TextStyle{Size: row.FontSize, Color: report.ColorBlack}
	for _, cell := range row.Cells {
		p.renderer.DrawText(cell.Lines, cell.X, box.Y+row.TextTop(), cell.Width, style)
	}
}

func (p *pass) cellValues(rec report.ProductRecord) []string {
	return []string{
		orPlaceholder(rec.Name),
		p.opts.CurrencyPrefix + rec.Price.StringFixed(2),
		strconv.FormatInt(rec.Stock, 10),
		orPlaceholder(rec.Category),
		orPlaceholder(rec.Supplier),
	}
}

// drawFooter dos líneas justo debajo de la última fila, en la página actual.
// No comprueba desbordamiento: cerca del final de la página el pie puede salirse.
func (p *pass) drawFooter(cursor report.PageCursor) error {
	style := report.TextStyle{Size: 10, Align: report.AlignCenter, Color: report.ColorBlack}
	y := cursor.Y + footerOffset
	copyright := fmt.Sprintf("© %d %s - Inventory Management System", p.now.Year(), p.opts.StoreName)
	if err := p.text(copyright, report.Margin, y, contentWidth(), style); err != nil {
		return err
	}
	return p.text("Report generated on "+p.dateStamp(), report.Margin, y+footerLineStep, contentWidth(), style)
}

func (p *pass) dateStamp() string { return p.now.Format("1/2/2006") }

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
