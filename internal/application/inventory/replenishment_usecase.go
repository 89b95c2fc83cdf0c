package inventory

import (
	"sort"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// Estados de la vista de inventario.
const (
	StatusOK  = "OK"
	StatusLow = "Bajo"
)

// StatusOf "OK" si el stock supera el mínimo, "Bajo" en otro caso.
func StatusOf(p entity.Product) string {
	if p.IsLowStock() {
		return StatusLow
	}
	return StatusOK
}

// ReplenishmentUseCase lista los productos en o bajo su stock mínimo con la
// cantidad sugerida de pedido.
type ReplenishmentUseCase struct {
	state state.Provider
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(st state.Provider) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{state: st}
}

// IdealStock ceil(1.5 * mínimo) en aritmética entera.
func IdealStock(minStock int) int {
	if minStock <= 0 {
		return 0
	}
	return (3*minStock + 1) / 2
}

// SuggestedOrderQty unidades a pedir para llegar al stock ideal (nunca negativo).
func SuggestedOrderQty(p entity.Product) int {
	qty := IdealStock(p.MinStock) - p.Stock
	if qty < 0 {
		return 0
	}
	return qty
}

// LowStock sugerencias ordenadas por mayor déficit (mínimo - stock), luego por nombre.
func (uc *ReplenishmentUseCase) LowStock() []dto.ReplenishmentSuggestionDTO {
	snap := uc.state.Snapshot()
	out := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range snap.Products {
		if !p.IsLowStock() {
			continue
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID.String(),
			ProductName:       p.Name,
			CurrentStock:      p.Stock,
			MinStock:          p.MinStock,
			IdealStock:        IdealStock(p.MinStock),
			SuggestedOrderQty: SuggestedOrderQty(p),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		di := out[i].MinStock - out[i].CurrentStock
		dj := out[j].MinStock - out[j].CurrentStock
		if di != dj {
			return di > dj
		}
		return out[i].ProductName < out[j].ProductName
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
