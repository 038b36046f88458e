// Package report contiene el núcleo del reporte de inventario: agregación de
// estadísticas y motor de maquetación (medir primero, dibujar después).
// No depende de ninguna librería de PDF; el dibujo se hace a través del puerto Renderer.
package report

import "github.com/shopspring/decimal"

// moneyPlaces decimales de redondeo para montos del resumen.
const moneyPlaces = 2

// ProductRecord es la vista de solo lectura de un producto que consume el reporte.
// Los campos de texto vacíos se imprimen como "-".
type ProductRecord struct {
	Name     string
	Price    decimal.Decimal
	Stock    int64
	Category string
	Supplier string
}

// InventoryStats resumen del inventario calculado en cada solicitud.
type InventoryStats struct {
	TotalProducts int
	TotalStock    int64
	AveragePrice  decimal.Decimal // redondeado a 2 decimales
	TotalValue    decimal.Decimal // redondeado a 2 decimales
	CategoryCount int
}

// Aggregate calcula el resumen de inventario. Función pura: no valida precios ni
// stock negativos, se agregan tal cual llegan.
//
// Redondeo: mitad hacia arriba (lejos de cero), p. ej. 1.005 → 1.01.
func Aggregate(records []ProductRecord) InventoryStats {
	stats := InventoryStats{
		AveragePrice: decimal.Zero,
		TotalValue:   decimal.Zero,
	}
	if len(records) == 0 {
		return stats
	}

	priceSum := decimal.Zero
	value := decimal.Zero
	categories := make(map[string]struct{}, len(records))
	for _, r := range records {
		stats.TotalStock += r.Stock
		priceSum = priceSum.Add(r.Price)
		value = value.Add(r.Price.Mul(decimal.NewFromInt(r.Stock)))
		categories[r.Category] = struct{}{}
	}

	stats.TotalProducts = len(records)
	stats.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(records)))).Round(moneyPlaces)
	stats.TotalValue = value.Round(moneyPlaces)
	stats.CategoryCount = len(categories)
	return stats
}
