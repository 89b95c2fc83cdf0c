package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/query"
)

// InventoryHandler vista de inventario y sugerencias de reposición (protegido).
type InventoryHandler struct {
	query         *query.Service
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(q *query.Service, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{query: q, replenishment: replenishment}
}

// List godoc
// @Summary      Vista de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "todos | ok | bajo"
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	return c.JSON(h.query.Inventory(f))
}

// LowStock godoc
// @Summary      Productos con stock bajo y cantidad sugerida de reposición
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.replenishment.LowStock())
}
