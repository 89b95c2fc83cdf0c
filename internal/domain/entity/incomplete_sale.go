package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pasos del registro de venta, en orden de ejecución.
const (
	SaleStepStock    = "stock"
	SaleStepCreate   = "venta"
	SaleStepMetadata = "metadata"
)

// IncompleteSale marca durable de una venta que falló a mitad de camino y cuya
// compensación no pudo completarse. Se concilia manualmente (ajuste de stock).
type IncompleteSale struct {
	ID           string
	SaleID       ID
	ClientID     ID
	Invoice      int
	Total        decimal.Decimal
	Items        []SaleItem
	FailedStep   string
	Cause        string
	PendingStock []StockRestore // stock que no se pudo devolver
	SaleCreated  bool           // la venta quedó persistida en el backend
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// StockRestore valor de stock que debía restaurarse para un producto.
type StockRestore struct {
	ProductID ID  `json:"productId"`
	Stock     int `json:"stock"`
}
