package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// SaleHandler historial, registro y factura de ventas (protegido).
type SaleHandler struct {
	query    *query.Service
	commands *command.Dispatcher
	invoice  *sales.InvoicePDFUseCase
	journal  repository.IncompleteSaleRepository
	log      zerolog.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	q *query.Service,
	commands *command.Dispatcher,
	invoice *sales.InvoicePDFUseCase,
	journal repository.IncompleteSaleRepository,
	log zerolog.Logger,
) *SaleHandler {
	return &SaleHandler{query: q, commands: commands, invoice: invoice, journal: journal, log: log}
}

// List godoc
// @Summary      Historial de ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (10 por página)"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.query.Sales(c.QueryInt("page", 1)))
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Sale(entity.ID(c.Params("id")))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar la venta del carrito
// @Description  Descuenta stock, crea la venta VTA-xxxx y avanza el consecutivo. Si un paso falla se revierten los anteriores.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "cliente_id"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:    command.RegisterSale,
		Payload: command.SaleRequest{ClientID: entity.ID(in.ClientID)},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.query.SaleView(*out.(*entity.Sale)))
}

// Delete godoc
// @Summary      Eliminar venta
// @Description  No restaura el stock descontado.
// @Tags         sales
// @Security     Bearer
// @Param        id       path   string  true  "ID de la venta (VTA-xxxx)"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      204
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	_, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.DeleteSale,
		Confirmed: confirmed(c),
		Payload:   command.RecordID{ID: entity.ID(c.Params("id"))},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) GetPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.invoice.Generate(c.Context(), entity.ID(c.Params("id")))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// ListIncomplete godoc
// @Summary      Ventas incompletas pendientes de conciliación
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IncompleteSaleDTO
// @Router       /api/sales/incomplete [get]
func (h *SaleHandler) ListIncomplete(c *fiber.Ctx) error {
	pending, err := h.journal.ListPending(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.IncompleteSaleDTO, 0, len(pending))
	for _, m := range pending {
		out = append(out, query.ToIncompleteSaleDTO(*m))
	}
	return c.JSON(out)
}

// ResolveIncomplete POST /api/sales/incomplete/:id/resolve
// El operador ya concilió la venta a mano.
func (h *SaleHandler) ResolveIncomplete(c *fiber.Ctx) error {
	if err := h.journal.Resolve(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
