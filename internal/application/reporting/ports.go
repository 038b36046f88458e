package reporting

import "github.com/jhoicas/quickcart-inventory/internal/domain/report"

// DocumentBackend crea el lienzo y el medidor de un único reporte. Cada llamada
// devuelve instancias nuevas: nunca se comparten entre reportes concurrentes.
type DocumentBackend interface {
	NewRenderer(meta report.DocumentMeta) report.Renderer
	NewMeasurer() report.Measurer
}
