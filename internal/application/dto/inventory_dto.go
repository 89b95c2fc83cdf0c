package dto

// StockAdjustmentRequest body para POST /api/products/:id/stock.
type StockAdjustmentRequest struct {
	Operation string `json:"operacion"` // add | subtract (también sumar | restar)
	Quantity  int    `json:"cantidad"`
}

// StockAdjustmentResponse stock resultante tras el ajuste.
type StockAdjustmentResponse struct {
	ProductID string `json:"producto_id"`
	Stock     int    `json:"stock"`
}

// InventoryFilter filtro de la vista de inventario: todos | ok | bajo.
type InventoryFilter struct {
	Status string `query:"estado"`
}

// InventoryItemDTO fila de la vista de inventario.
type InventoryItemDTO struct {
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"stock_minimo"`
	Status    string `json:"estado"` // OK | Bajo
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo su mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID         string `json:"producto_id"`
	ProductName       string `json:"nombre"`
	CurrentStock      int    `json:"stock"`
	MinStock          int    `json:"stock_minimo"`
	IdealStock        int    `json:"stock_ideal"`       // ceil(MinStock * 1.5)
	SuggestedOrderQty int    `json:"cantidad_sugerida"` // IdealStock - CurrentStock, mínimo 0
	Priority          int    `json:"prioridad"`         // 1 = más urgente
}
