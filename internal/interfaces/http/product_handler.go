package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	query    *query.Service
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(q *query.Service, commands *command.Dispatcher, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{query: q, commands: commands, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Búsqueda por nombre"
// @Param        categoria  query  string  false  "ID de categoría o 'todos'"
// @Param        page       query  int     false  "Página (8 por página)"  default(1)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f dto.ProductFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	return c.JSON(h.query.Products(f))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Product(entity.ID(c.Params("id")))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductForm  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductForm  true  "Datos completos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	return h.save(c, entity.ID(c.Params("id")), fiber.StatusOK)
}

func (h *ProductHandler) save(c *fiber.Ctx, id entity.ID, status int) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:    command.SaveProduct,
		Payload: command.SaveRecord[dto.ProductForm]{ID: id, Form: in},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(status).JSON(h.query.ProductView(*out.(*entity.Product)))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	_, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.DeleteProduct,
		Confirmed: confirmed(c),
		Payload:   command.RecordID{ID: entity.ID(c.Params("id"))},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock (+/-)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockAdjustmentRequest  true  "operacion: add|subtract, cantidad > 0"
// @Success      200   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	op, err := inventory.ParseOperation(in.Operation)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:    command.AdjustStock,
		Payload: command.StockChange{ProductID: entity.ID(c.Params("id")), Operation: op, Quantity: in.Quantity},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// confirmed ?confirm=true en la query.
func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm", false)
}
