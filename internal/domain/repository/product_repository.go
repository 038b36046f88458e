package repository

import (
	"context"

	"github.com/jhoicas/quickcart-inventory/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos que consume el reporte (DIP).
type ProductRepository interface {
	// ListAll devuelve todos los productos en orden de creación.
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// TotalStock suma la existencia de todos los productos.
	TotalStock(ctx context.Context) (int64, error)
}
