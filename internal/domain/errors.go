package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrClientRequired       = errors.New("selecciona un cliente")
	ErrInvalidQuantity      = errors.New("la cantidad debe ser mayor a cero")
	ErrCategoryInUse        = errors.New("la categoría tiene productos asociados")
	ErrInvalidBackup        = errors.New("formato de archivo inválido")
	ErrConfirmationMismatch = errors.New("frase de confirmación incorrecta")
	ErrConfirmationRequired = errors.New("la operación requiere confirmación")
	ErrNothingToExport      = errors.New("no hay datos para exportar")
	ErrUnknownCommand       = errors.New("comando desconocido")
)

// ValidationError falla de precondición detectada antes de cualquier llamada de red.
// Envuelve uno de los errores de dominio para poder compararlo con errors.Is.
type ValidationError struct {
	Err    error
	Detail string
}

// NewValidationError construye un ValidationError sobre un error de dominio.
func NewValidationError(err error, detail string) *ValidationError {
	return &ValidationError{Err: err, Detail: detail}
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// CategoryInUseError rechazo del borrado de una categoría con productos asociados.
type CategoryInUseError struct {
	CategoryID string
	Count      int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("no se puede eliminar la categoría porque hay %d producto(s) asociado(s) a ella", e.Count)
}

func (e *CategoryInUseError) Unwrap() error { return ErrCategoryInUse }

// IsValidation indica si err es una falla de validación local (sin efectos en el backend).
func IsValidation(err error) bool {
	var ve *ValidationError
	var ce *CategoryInUseError
	return errors.As(err, &ve) || errors.As(err, &ce)
}
