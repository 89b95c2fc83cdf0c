package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	TotalRevenue       decimal.Decimal `json:"ingresos_totales"`
	TotalRevenueLabel  string          `json:"ingresos_totales_label"`
	SalesCount         int             `json:"ventas_realizadas"`
	AverageTicket      decimal.Decimal `json:"ticket_promedio"`
	AverageTicketLabel string          `json:"ticket_promedio_label"`
	LowStockCount      int             `json:"productos_stock_bajo"`

	// Top 5 productos por unidades vendidas (mayor a menor)
	TopProducts []TopProductDTO `json:"top_productos"`
	// Stock actual por producto (gráfico de barras)
	StockByProduct []StockPointDTO `json:"stock_por_producto"`
}

// TopProductDTO unidades vendidas de un producto (por nombre, como en las líneas de venta).
type TopProductDTO struct {
	Name  string `json:"nombre"`
	Units int    `json:"unidades"`
}

// StockPointDTO punto del gráfico de stock.
type StockPointDTO struct {
	Name  string `json:"nombre"`
	Stock int    `json:"stock"`
}
