// Package inventory contiene los casos de uso de existencias: ajuste manual de
// stock y sugerencias de reposición.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// Operation sentido del ajuste manual.
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
)

// ParseOperation acepta add|subtract y sus equivalentes sumar|restar.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "sumar", "+":
		return OperationAdd, nil
	case "subtract", "restar", "-":
		return OperationSubtract, nil
	}
	return "", domain.NewValidationError(domain.ErrInvalidInput, fmt.Sprintf("operación desconocida %q", s))
}

// StockAdjustmentUseCase suma o resta unidades al stock de un producto.
type StockAdjustmentUseCase struct {
	mu          sync.Locker
	productRepo repository.ProductRepository
	state       state.Provider
	log         zerolog.Logger
}

// NewStockAdjustmentUseCase construye el caso de uso.
func NewStockAdjustmentUseCase(productRepo repository.ProductRepository, st state.Provider, log zerolog.Logger) *StockAdjustmentUseCase {
	return &StockAdjustmentUseCase{mu: &sync.Mutex{}, productRepo: productRepo, state: st, log: log}
}

// WithStockLock comparte el candado con el registro de ventas.
func (uc *StockAdjustmentUseCase) WithStockLock(l sync.Locker) *StockAdjustmentUseCase {
	uc.mu = l
	return uc
}

// Adjust calcula el nuevo stock a partir del valor en caché y lo escribe con un único PATCH.
// Cantidad no positiva, producto desconocido o una resta mayor al stock se rechazan
// sin llamar al backend. Devuelve el stock resultante.
func (uc *StockAdjustmentUseCase) Adjust(ctx context.Context, productID entity.ID, op Operation, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.NewValidationError(domain.ErrInvalidQuantity, "")
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, ok := uc.state.Snapshot().Product(productID)
	if !ok {
		return 0, domain.NewValidationError(domain.ErrNotFound, fmt.Sprintf("producto %s", productID))
	}

	var newStock int
	switch op {
	case OperationAdd:
		newStock = p.Stock + qty
	case OperationSubtract:
		if qty > p.Stock {
			return 0, domain.NewValidationError(domain.ErrInsufficientStock, p.Name)
		}
		newStock = p.Stock - qty
	default:
		return 0, domain.NewValidationError(domain.ErrInvalidInput, fmt.Sprintf("operación desconocida %q", op))
	}

	if err := uc.productRepo.UpdateStock(ctx, productID, newStock); err != nil {
		return 0, fmt.Errorf("actualizar stock de %s: %w", productID, err)
	}
	uc.log.Info().
		Str("product_id", productID.String()).Str("op", string(op)).
		Int("cantidad", qty).Int("stock", newStock).
		Msg("stock ajustado")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return newStock, nil
}
