package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/query"
)

// StateHandler estado de la copia local y recarga manual desde el backend.
type StateHandler struct {
	query    *query.Service
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewStateHandler construye el handler.
func NewStateHandler(q *query.Service, commands *command.Dispatcher, log zerolog.Logger) *StateHandler {
	return &StateHandler{query: q, commands: commands, log: log}
}

// Get GET /api/state
func (h *StateHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.query.State())
}

// Reload godoc
// @Summary      Recargar datos del backend
// @Description  Si alguna colección falla se conserva la copia anterior.
// @Tags         state
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/state/reload [post]
func (h *StateHandler) Reload(c *fiber.Ctx) error {
	if _, err := h.commands.Dispatch(c.Context(), command.Command{Kind: command.Reload}); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(h.query.State())
}
