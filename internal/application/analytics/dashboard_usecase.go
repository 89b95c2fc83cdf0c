// Package analytics contiene el resumen de negocio que muestra el dashboard
// de la consola.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/pkg/format"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera los KPIs del dashboard a partir del snapshot vigente.
//
// Fuente de datos: state.Provider (solo lectura, sin llamadas al backend).
type DashboardUseCase struct {
	state state.Provider
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st state.Provider) *DashboardUseCase {
	return &DashboardUseCase{state: st}
}

// GetSummary construye el DashboardSummaryDTO:
//  1. Ingresos totales y número de ventas
//  2. Ticket promedio (0 sin ventas)
//  3. Top 5 productos por unidades vendidas
//  4. Stock actual por producto y cuántos están en o bajo su mínimo
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	snap := uc.state.Snapshot()

	// ── Ventas ────────────────────────────────────────────────────────────────
	revenue := decimal.Zero
	for _, v := range snap.Sales {
		revenue = revenue.Add(v.Total)
	}
	count := len(snap.Sales)
	avg := decimal.Zero
	if count > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	// ── Inventario ────────────────────────────────────────────────────────────
	low := 0
	stock := make([]dto.StockPointDTO, 0, len(snap.Products))
	for _, p := range snap.Products {
		if p.IsLowStock() {
			low++
		}
		stock = append(stock, dto.StockPointDTO{Name: p.Name, Stock: p.Stock})
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:       revenue.Round(2),
		TotalRevenueLabel:  format.FormatCOP(revenue),
		SalesCount:         count,
		AverageTicket:      avg,
		AverageTicketLabel: format.FormatCOP(avg),
		LowStockCount:      low,
		TopProducts:        topProducts(snap, dashboardTopProducts),
		StockByProduct:     stock,
	}
}

// topProducts suma unidades por nombre de línea. Los empates conservan el orden
// en que el producto apareció por primera vez.
func topProducts(snap *state.Snapshot, limit int) []dto.TopProductDTO {
	index := make(map[string]int)
	out := make([]dto.TopProductDTO, 0)
	for _, v := range snap.Sales {
		for _, it := range v.Items {
			i, ok := index[it.Name]
			if !ok {
				i = len(out)
				index[it.Name] = i
				out = append(out, dto.TopProductDTO{Name: it.Name})
			}
			out[i].Units += it.Quantity
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Units > out[j].Units })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
