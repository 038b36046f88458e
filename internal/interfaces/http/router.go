package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quickcart-inventory/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *reporting.ProductReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/report", reportHandler.DownloadPDF)
	products.Get("/stats", reportHandler.GetStats)
	products.Get("/total-stock", reportHandler.GetTotalStock)
}
