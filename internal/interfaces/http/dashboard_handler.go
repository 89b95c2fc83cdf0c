package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/amazonia/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores del tablero.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (ingresos_totales, ventas_realizadas,
// ticket_promedio, productos_stock_bajo, top_productos[5], stock_por_producto).
// Se calcula sobre el snapshot vigente, sin llamadas al backend.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
