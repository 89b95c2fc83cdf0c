package sales

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// CartLine línea del carrito. Name, Price y Stock se copian del producto al agregarlo.
type CartLine struct {
	ProductID entity.ID
	Name      string
	Price     decimal.Decimal
	Stock     int
	Quantity  int
}

// Subtotal precio * cantidad.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart venta en construcción (previa al registro). Seguro para uso concurrente.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

// NewCart crea un carrito vacío.
func NewCart() *Cart { return &Cart{} }

// Add agrega qty unidades del producto. Si ya está en el carrito se acumula en la
// misma línea; la cantidad acumulada no puede superar el stock en caché.
func (c *Cart) Add(p entity.Product, qty int) error {
	if qty <= 0 {
		return domain.NewValidationError(domain.ErrInvalidQuantity, "")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != p.ID {
			continue
		}
		if c.lines[i].Quantity+qty > p.Stock {
			return domain.NewValidationError(domain.ErrInsufficientStock, p.Name)
		}
		c.lines[i].Quantity += qty
		c.lines[i].Stock = p.Stock
		return nil
	}
	if qty > p.Stock {
		return domain.NewValidationError(domain.ErrInsufficientStock, p.Name)
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Quantity:  qty,
	})
	return nil
}

// Remove quita la línea del producto. Devuelve false si no estaba.
func (c *Cart) Remove(id entity.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines copia de las líneas en orden de inserción.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total suma de subtotales con los precios capturados al agregar.
func (c *Cart) Total() decimal.Decimal {
	return linesTotal(c.Lines())
}

func linesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
