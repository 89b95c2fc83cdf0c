package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// CartHandler carrito de la venta en curso (uno por proceso).
type CartHandler struct {
	cart     *sales.CartUseCase
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(cart *sales.CartUseCase, commands *command.Dispatcher, log zerolog.Logger) *CartHandler {
	return &CartHandler{cart: cart, commands: commands, log: log}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(query.ToCartResponse(h.cart.Lines()))
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito se suman las cantidades. Se valida contra el stock en caché.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartAddRequest  true  "producto_id, cantidad >= 1"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.CartAddRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.run(c, command.AddToCart, command.CartItem{ProductID: entity.ID(in.ProductID), Quantity: in.Quantity})
}

// Remove DELETE /api/cart/:productId
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return h.run(c, command.RemoveFromCart, command.CartItem{ProductID: entity.ID(c.Params("productId"))})
}

// Clear DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return h.run(c, command.ClearCart, nil)
}

func (h *CartHandler) run(c *fiber.Ctx, kind command.Kind, payload any) error {
	out, err := h.commands.Dispatch(c.Context(), command.Command{Kind: kind, Payload: payload})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(query.ToCartResponse(out.([]sales.CartLine)))
}
