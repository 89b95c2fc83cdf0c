package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartAddRequest body para POST /api/cart.
type CartAddRequest struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
}

// CartLineDTO línea del carrito.
type CartLineDTO struct {
	ProductID     string          `json:"producto_id"`
	Name          string          `json:"nombre"`
	Price         decimal.Decimal `json:"precio"`
	Quantity      int             `json:"cantidad"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	SubtotalLabel string          `json:"subtotal_label"`
}

// CartResponse carrito con total.
type CartResponse struct {
	Lines      []CartLineDTO   `json:"lineas"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
}

// RegisterSaleRequest body para POST /api/sales.
type RegisterSaleRequest struct {
	ClientID string `json:"cliente_id"`
}

// SaleItemDTO línea de una venta registrada.
type SaleItemDTO struct {
	ProductID string          `json:"producto_id"`
	Name      string          `json:"nombre"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  int             `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta lista para mostrar.
type SaleResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"cliente_id"`
	ClientName string          `json:"cliente"`
	Items      []SaleItemDTO   `json:"productos"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
	Date       time.Time       `json:"fecha"`
	DateLabel  string          `json:"fecha_label"` // dd/mm/yyyy
}

// SaleListResponse página de ventas (más recientes primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// IncompleteSaleDTO marca de venta incompleta pendiente de conciliación.
type IncompleteSaleDTO struct {
	ID           string          `json:"id"`
	SaleID       string          `json:"venta_id"`
	ClientID     string          `json:"cliente_id"`
	Invoice      int             `json:"factura"`
	Total        decimal.Decimal `json:"total"`
	FailedStep   string          `json:"paso_fallido"`
	Cause        string          `json:"causa"`
	SaleCreated  bool            `json:"venta_creada"`
	PendingStock map[string]int  `json:"stock_pendiente"`
	CreatedAt    time.Time       `json:"created_at"`
}
