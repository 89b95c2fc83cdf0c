package sales

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// DeleteSaleUseCase elimina el registro de una venta. El stock vendido NO se devuelve
// a los productos; si corresponde se corrige con un ajuste de stock.
type DeleteSaleUseCase struct {
	saleRepo repository.SaleRepository
	state    state.Provider
	log      zerolog.Logger
}

// NewDeleteSaleUseCase construye el caso de uso.
func NewDeleteSaleUseCase(saleRepo repository.SaleRepository, st state.Provider, log zerolog.Logger) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo, state: st, log: log}
}

// Delete elimina la venta id. Una venta que no está en la caché se rechaza sin llamar al backend.
func (uc *DeleteSaleUseCase) Delete(ctx context.Context, id entity.ID) error {
	if _, ok := uc.state.Snapshot().Sale(id); !ok {
		return fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar venta %s: %w", id, err)
	}
	uc.log.Info().Str("sale_id", id.String()).Msg("venta eliminada (stock no restituido)")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return nil
}
