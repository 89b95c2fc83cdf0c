package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// ClientHandler CRUD de clientes (protegido).
type ClientHandler struct {
	query    *query.Service
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(q *query.Service, commands *command.Dispatcher, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{query: q, commands: commands, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Búsqueda por nombre"
// @Param        page  query  int     false  "Página (8 por página)"
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var f dto.ClientFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	return c.JSON(h.query.Clients(f))
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update PATCH /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	return h.save(c, entity.ID(c.Params("id")), fiber.StatusOK)
}

func (h *ClientHandler) save(c *fiber.Ctx, id entity.ID, status int) error {
	var in dto.ClientForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:    command.SaveClient,
		Payload: command.SaveRecord[dto.ClientForm]{ID: id, Form: in},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(status).JSON(query.ToClientResponse(*out.(*entity.Client)))
}

// Delete DELETE /api/clients/:id?confirm=true
// Las ventas del cliente se conservan y muestran "N/A".
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	_, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.DeleteClient,
		Confirmed: confirmed(c),
		Payload:   command.RecordID{ID: entity.ID(c.Params("id"))},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
