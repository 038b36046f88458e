package pdf

import "github.com/jhoicas/quickcart-inventory/internal/domain/report"

// Backend fábrica de lienzo y medidor fpdf; cada reporte obtiene instancias propias.
type Backend struct{}

// NewBackend construye la fábrica.
func NewBackend() *Backend { return &Backend{} }

// NewRenderer crea un lienzo nuevo.
func (Backend) NewRenderer(meta report.DocumentMeta) report.Renderer {
	return NewFpdfRenderer(meta)
}

// NewMeasurer crea un medidor nuevo.
func (Backend) NewMeasurer() report.Measurer {
	return NewFpdfMeasurer()
}
