package sales

import (
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// CartUseCase arma el carrito a partir de los productos del snapshot vigente.
type CartUseCase struct {
	cart  *Cart
	state state.Provider
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cart *Cart, st state.Provider) *CartUseCase {
	return &CartUseCase{cart: cart, state: st}
}

// Add agrega un producto por id. Solo valida contra la caché local, sin red.
func (uc *CartUseCase) Add(productID entity.ID, qty int) error {
	p, ok := uc.state.Snapshot().Product(productID)
	if !ok {
		return domain.NewValidationError(domain.ErrInvalidInput, "selecciona un producto válido")
	}
	return uc.cart.Add(p, qty)
}

func (uc *CartUseCase) Remove(productID entity.ID) error {
	if !uc.cart.Remove(productID) {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *CartUseCase) Clear() { uc.cart.Clear() }

func (uc *CartUseCase) Lines() []CartLine { return uc.cart.Lines() }
