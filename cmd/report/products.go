package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/quickcart-inventory/internal/domain/report"
)

// productJSON formato de entrada: {"name", "price", "stock", "category", "supplier"};
// price acepta número o cadena decimal.
type productJSON struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	Category string          `json:"category"`
	Supplier string          `json:"supplier"`
}

// loadRecords decodifica un arreglo JSON de productos conservando el orden.
func loadRecords(r io.Reader) ([]report.ProductRecord, error) {
	var items []productJSON
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("productos JSON: %w", err)
	}
	records := make([]report.ProductRecord, len(items))
	for i, p := range items {
		records[i] = report.ProductRecord{
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: p.Category,
			Supplier: p.Supplier,
		}
	}
	return records, nil
}
