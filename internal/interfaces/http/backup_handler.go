package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/backup"
	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
)

// maxBackupSize límite del archivo de respaldo subido por multipart.
const maxBackupSize = 32 << 20

// BackupHandler respaldo, restauración y reinicio del conjunto de datos.
type BackupHandler struct {
	uc       *backup.UseCase
	commands *command.Dispatcher
	log      zerolog.Logger
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase, commands *command.Dispatcher, log zerolog.Logger) *BackupHandler {
	return &BackupHandler{uc: uc, commands: commands, log: log}
}

// Export godoc
// @Summary      Descargar respaldo JSON
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export()
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Import godoc
// @Summary      Restaurar respaldo
// @Description  Reemplaza todos los datos del backend. Acepta el JSON como cuerpo o como archivo multipart (campo "archivo").
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        confirm  query  bool  true  "Confirmación explícita"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	data, err := backupBody(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", "no se pudo leer el archivo de respaldo")
	}
	out, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.ImportBackup,
		Confirmed: confirmed(c),
		Payload:   command.BackupFile{Data: data},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// backupBody contenido del respaldo: el campo multipart "archivo" o el cuerpo crudo.
func backupBody(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Body(), nil
	}
	if fh.Size > maxBackupSize {
		return nil, fmt.Errorf("archivo de %d bytes excede el límite", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Reset godoc
// @Summary      Reiniciar aplicación
// @Description  Borra todos los registros y deja el consecutivo en 0. Requiere la frase REINICIAR y confirmación.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequest  true  "frase, confirm"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/reset [post]
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	var in dto.ResetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	_, err := h.commands.Dispatch(c.Context(), command.Command{
		Kind:      command.ResetData,
		Confirmed: in.Confirm || confirmed(c),
		Payload:   command.ResetRequest{Phrase: in.Phrase},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos reiniciados"})
}
