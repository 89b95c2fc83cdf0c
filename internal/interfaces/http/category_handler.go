package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// CategoryHandler CRUD de categorías (protegido).
type CategoryHandler struct {
	query    *query.Service
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(q *query.Service, commands *command.Dispatcher, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{query: q, commands: commands, log: log}
}

// List GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.query.Categories())
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update PATCH /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	return h.save(c, entity.ID(c.Params("id")), fiber.StatusOK)
}

func (h *CategoryHandler) save(c *fiber.Ctx, id entity.ID, status int) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:    command.SaveCategory,
		Payload: command.SaveRecord[dto.CategoryForm]{ID: id, Form: in},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(status).JSON(h.query.CategoryView(*out.(*entity.Category)))
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Se rechaza con 409 si algún producto la referencia.
// @Tags         categories
// @Security     Bearer
// @Param        id       path   string  true  "ID de la categoría"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	_, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.DeleteCategory,
		Confirmed: confirmed(c),
		Payload:   command.RecordID{ID: entity.ID(c.Params("id"))},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
