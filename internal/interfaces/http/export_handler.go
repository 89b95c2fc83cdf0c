package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler reportes en Excel de productos, clientes y ventas.
type ExportHandler struct {
	uc  *report.ExportUseCase
	log zerolog.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// Products godoc
// @Summary      Reporte de productos (.xlsx)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse  "sin datos para exportar"
// @Router       /api/reports/products [get]
func (h *ExportHandler) Products(c *fiber.Ctx) error {
	return h.send(c)(h.uc.ExportProducts())
}

// Clients GET /api/reports/clients
func (h *ExportHandler) Clients(c *fiber.Ctx) error {
	return h.send(c)(h.uc.ExportClients())
}

// Sales GET /api/reports/sales
func (h *ExportHandler) Sales(c *fiber.Ctx) error {
	return h.send(c)(h.uc.ExportSales())
}

func (h *ExportHandler) send(c *fiber.Ctx) func([]byte, string, error) error {
	return func(data []byte, filename string, err error) error {
		if err != nil {
			return writeError(c, h.log, err)
		}
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(data)
	}
}
