package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/quickcart-inventory/internal/application/dto"
	"github.com/jhoicas/quickcart-inventory/internal/domain/entity"
	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
	"github.com/jhoicas/quickcart-inventory/internal/domain/repository"
	"github.com/jhoicas/quickcart-inventory/pkg/logger"
)

// ProductReportUseCase expone el reporte PDF y el resumen de inventario.
// Cada llamada genera un reporte independiente; el Generator no comparte estado.
type ProductReportUseCase struct {
	repo      repository.ProductRepository
	generator *Generator
	log       *logger.Logger
}

// NewProductReportUseCase construye el caso de uso.
func NewProductReportUseCase(repo repository.ProductRepository, generator *Generator, log *logger.Logger) *ProductReportUseCase {
	return &ProductReportUseCase{repo: repo, generator: generator, log: log}
}

// DownloadProductsPDF carga todos los productos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, "products.pdf", nil) si todo sale bien.
//   - domain.ErrReportGenerationFailed envolviendo la causa si falla el dibujo.
func (uc *ProductReportUseCase) DownloadProductsPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	start := time.Now()
	reportID := uuid.NewString()

	records, err := uc.loadRecords(ctx)
	if err != nil {
		return nil, "", err
	}

	res, err := uc.generator.Generate(ctx, reportID, records)
	if err != nil {
		uc.log.Error().Err(err).Str("report_id", reportID).Int("rows", len(records)).Msg("reporte de inventario fallido")
		return nil, "", err
	}

	uc.log.Info().
		Str("report_id", reportID).
		Int("rows", res.Rows).
		Int("pages", res.Pages).
		Int("bytes", len(res.Document)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("reporte de inventario generado")
	return res.Document, Filename, nil
}

// GetStats resumen de inventario (mismo cálculo que el bloque del PDF).
func (uc *ProductReportUseCase) GetStats(ctx context.Context) (*dto.InventoryStatsResponse, error) {
	records, err := uc.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return toStatsResponse(report.Aggregate(records)), nil
}

// GetTotalStock suma de existencias calculada en la base de datos.
func (uc *ProductReportUseCase) GetTotalStock(ctx context.Context) (*dto.TotalStockResponse, error) {
	total, err := uc.repo.TotalStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: total stock: %w", err)
	}
	return &dto.TotalStockResponse{TotalStock: total}, nil
}

func (uc *ProductReportUseCase) loadRecords(ctx context.Context) ([]report.ProductRecord, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	return ToRecords(products), nil
}

// ToRecords convierte productos persistidos en registros del reporte (mismo orden).
func ToRecords(products []*entity.Product) []report.ProductRecord {
	records := make([]report.ProductRecord, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		records = append(records, report.ProductRecord{
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: p.Category,
			Supplier: p.Supplier,
		})
	}
	return records
}

func toStatsResponse(s report.InventoryStats) *dto.InventoryStatsResponse {
	return &dto.InventoryStatsResponse{
		TotalProducts: s.TotalProducts,
		TotalStock:    s.TotalStock,
		AveragePrice:  s.AveragePrice.InexactFloat64(),
		TotalValue:    s.TotalValue.InexactFloat64(),
		CategoryCount: s.CategoryCount,
	}
}
