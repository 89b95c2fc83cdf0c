// Package command despacha las operaciones que modifican datos a través de una
// tabla tipada de handlers.
package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/domain"
)

// Kind tipo de comando.
type Kind string

const (
	SaveProduct    Kind = "guardar_producto"
	DeleteProduct  Kind = "eliminar_producto"
	AdjustStock    Kind = "ajustar_stock"
	SaveClient     Kind = "guardar_cliente"
	DeleteClient   Kind = "eliminar_cliente"
	SaveCategory   Kind = "guardar_categoria"
	DeleteCategory Kind = "eliminar_categoria"
	AddToCart      Kind = "agregar_al_carrito"
	RemoveFromCart Kind = "quitar_del_carrito"
	ClearCart      Kind = "vaciar_carrito"
	RegisterSale   Kind = "registrar_venta"
	DeleteSale     Kind = "eliminar_venta"
	ImportBackup   Kind = "importar_respaldo"
	ResetData      Kind = "reiniciar_datos"
	Reload         Kind = "recargar"
)

// destructive comandos que borran datos y exigen confirmación explícita.
var destructive = map[Kind]bool{
	DeleteProduct:  true,
	DeleteClient:   true,
	DeleteCategory: true,
	DeleteSale:     true,
	ImportBackup:   true,
	ResetData:      true,
}

// Destructive indica si el comando requiere Confirmed.
func (k Kind) Destructive() bool { return destructive[k] }

// Command una invocación: tipo, confirmación del operador y payload tipado.
type Command struct {
	Kind      Kind
	Confirmed bool
	Payload   any
}

// Handler ejecuta un comando y devuelve su resultado (puede ser nil).
type Handler func(ctx context.Context, cmd Command) (any, error)

// Dispatcher tabla kind → handler. Seguro para uso concurrente.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Kind]Handler
	log      zerolog.Logger
}

// NewDispatcher crea un dispatcher sin handlers.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{handlers: make(map[Kind]Handler), log: log}
}

// Register asocia (o reemplaza) el handler de un tipo de comando.
func (d *Dispatcher) Register(kind Kind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = h
}

// Dispatch valida la confirmación, ejecuta el handler y registra el resultado.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (any, error) {
	d.mu.RLock()
	h, ok := d.handlers[cmd.Kind]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, cmd.Kind)
	}
	if cmd.Kind.Destructive() && !cmd.Confirmed {
		return nil, domain.NewValidationError(domain.ErrConfirmationRequired, string(cmd.Kind))
	}

	start := time.Now()
	out, err := h(ctx, cmd)
	ev := d.log.Info()
	if err != nil {
		ev = d.log.Warn().Err(err)
		if domain.IsValidation(err) {
			ev = d.log.Debug().Err(err)
		}
	}
	ev.Str("command", string(cmd.Kind)).Dur("elapsed", time.Since(start)).Msg("comando ejecutado")
	return out, err
}

// payload extrae el payload con el tipo esperado.
func payload[T any](cmd Command) (T, error) {
	p, ok := cmd.Payload.(T)
	if !ok {
		var zero T
		return zero, domain.NewValidationError(domain.ErrInvalidInput, fmt.Sprintf("payload de %s: %T", cmd.Kind, cmd.Payload))
	}
	return p, nil
}

// IsUnknown indica si err proviene de un comando sin handler.
func IsUnknown(err error) bool { return errors.Is(err, domain.ErrUnknownCommand) }
