package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es la existencia total; no se valida aquí (precios o stock negativos se aceptan tal cual).
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta
	Stock     int64
	Category  string
	Supplier  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
