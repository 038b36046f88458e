package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quickcart-inventory/internal/application/dto"
	"github.com/jhoicas/quickcart-inventory/internal/application/reporting"
	"github.com/jhoicas/quickcart-inventory/internal/domain"
)

// ReportHandler maneja el reporte PDF y el resumen de inventario (protegido).
type ReportHandler struct {
	uc *reporting.ProductReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ProductReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar reporte PDF de inventario
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/report [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.DownloadProductsPDF(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, reporting.MediaType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(doc)
}

// GetStats godoc
// @Summary      Resumen de inventario
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/stats [get]
func (h *ReportHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetTotalStock godoc
// @Summary      Stock total de todos los productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TotalStockResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/total-stock [get]
func (h *ReportHandler) GetTotalStock(c *fiber.Ctx) error {
	out, err := h.uc.GetTotalStock(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrReportGenerationFailed) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_GENERATION_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
