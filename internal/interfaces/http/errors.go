package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
)

// backendMessage mensaje único para cualquier falla del backend (red o status).
const backendMessage = "no se pudo completar la operación con el servidor de datos, intente de nuevo"

// validationCodes código de respuesta por error de dominio.
var validationCodes = []struct {
	err    error
	code   string
	status int
}{
	{domain.ErrCategoryInUse, "CATEGORY_IN_USE", fiber.StatusConflict},
	{domain.ErrNotFound, "NOT_FOUND", fiber.StatusNotFound},
	{domain.ErrInsufficientStock, "INSUFFICIENT_STOCK", fiber.StatusBadRequest},
	{domain.ErrEmptyCart, "EMPTY_CART", fiber.StatusBadRequest},
	{domain.ErrClientRequired, "CLIENT_REQUIRED", fiber.StatusBadRequest},
	{domain.ErrInvalidQuantity, "INVALID_QUANTITY", fiber.StatusBadRequest},
	{domain.ErrInvalidBackup, "INVALID_BACKUP", fiber.StatusBadRequest},
	{domain.ErrConfirmationMismatch, "CONFIRMATION_MISMATCH", fiber.StatusBadRequest},
	{domain.ErrConfirmationRequired, "CONFIRMATION_REQUIRED", fiber.StatusBadRequest},
	{domain.ErrInvalidInput, "VALIDATION", fiber.StatusBadRequest},
}

// writeError traduce err a una respuesta JSON.
//
//   - Validación local → 400 (409 categoría en uso, 404 registro inexistente)
//   - Venta incompleta (saga) → 502 con el id de la marca si no se pudo revertir
//   - Backend REST (red o status) → 502 con mensaje genérico
//   - Cualquier otro → 500
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	if domain.IsValidation(err) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNothingToExport) {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: codeFor(err), Message: err.Error()})
	}

	var saga *sales.SagaError
	if errors.As(err, &saga) {
		log.Error().Err(err).Str("step", saga.Step).Str("journal_id", saga.JournalID).Msg("registro de venta fallido")
		msg := "la venta no se registró; los cambios se revirtieron"
		if !saga.Compensated {
			msg = "la venta quedó incompleta y requiere conciliación manual (ref. " + saga.JournalID + ")"
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SALE_FAILED", Message: msg})
	}

	if rest.IsBackendError(err) {
		log.Error().Err(err).Str("path", c.Path()).Msg("backend REST")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: backendMessage})
	}

	if command.IsUnknown(err) {
		log.Error().Err(err).Msg("comando sin handler")
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrNothingToExport) {
		return fiber.StatusNotFound
	}
	for _, v := range validationCodes {
		if errors.Is(err, v.err) {
			return v.status
		}
	}
	return fiber.StatusBadRequest
}

func codeFor(err error) string {
	if errors.Is(err, domain.ErrNothingToExport) {
		return "NOTHING_TO_EXPORT"
	}
	for _, v := range validationCodes {
		if errors.Is(err, v.err) {
			return v.code
		}
	}
	return "VALIDATION"
}

// badRequest cuerpo o parámetro mal formado.
func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
