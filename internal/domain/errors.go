package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrReportGenerationFailed = errors.New("generación del reporte fallida")
)
