package dto

// InventoryStatsResponse respuesta de GET /api/products/stats.
// Las claves mantienen el formato camelCase que ya consumen los clientes.
type InventoryStatsResponse struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int64   `json:"totalStock"`
	AveragePrice  float64 `json:"averagePrice"`
	TotalValue    float64 `json:"totalValue"`
	CategoryCount int     `json:"categoryCount"`
}

// TotalStockResponse respuesta de GET /api/products/total-stock.
type TotalStockResponse struct {
	TotalStock int64 `json:"totalStock"`
}
