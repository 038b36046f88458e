// report genera products.pdf sin base de datos, a partir de un arreglo JSON de
// productos (ver productJSON).
//
// Uso: go run ./cmd/report [ruta/products.json] [salida.pdf]
// Por defecto lee products.json y escribe products.pdf en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/quickcart-inventory/internal/application/reporting"
	infrapdf "github.com/jhoicas/quickcart-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/quickcart-inventory/pkg/config"
	"github.com/jhoicas/quickcart-inventory/pkg/logger"
)

func main() {
	inPath, outPath := "products.json", reporting.Filename
	if len(os.Args) > 1 {
		inPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := run(context.Background(), log, cfg.Report, inPath, outPath); err != nil {
		log.Fatal().Err(err).Str("in", inPath).Str("out", outPath).Msg("reporte fallido")
	}
}

// run lee inPath, genera el reporte y lo escribe en outPath. Todos los archivos
// quedan cerrados al volver.
func run(ctx context.Context, log *logger.Logger, rc config.ReportConfig, inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("abrir productos: %w", err)
	}
	records, err := loadRecords(f)
	f.Close()
	if err != nil {
		return err
	}

	gen := reporting.NewGenerator(infrapdf.NewBackend(), reporting.Options{
		StoreName:      rc.StoreName,
		CurrencyPrefix: rc.CurrencyPrefix,
		Author:         rc.Author,
	})
	reportID := uuid.NewString()
	res, err := gen.Generate(ctx, reportID, records)
	if err != nil {
		return fmt.Errorf("generar reporte %s: %w", reportID, err)
	}

	if err := os.WriteFile(outPath, res.Document, 0o644); err != nil {
		return fmt.Errorf("escribir PDF: %w", err)
	}
	log.Info().
		Str("report_id", reportID).
		Str("path", outPath).
		Int("rows", res.Rows).
		Int("pages", res.Pages).
		Msg("reporte escrito")
	return nil
}
