package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
	"github.com/jhoicas/amazonia/pkg/format"
)

// ProductUseCase alta, edición y baja de productos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	state state.Provider
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, st state.Provider, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, state: st, log: log}
}

// FromForm interpreta el formulario: textos recortados, números con parseo tolerante
// y categoría vacía como referencia nula.
func (uc *ProductUseCase) FromForm(in dto.ProductForm) (*entity.Product, error) {
	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       format.SafeParseDecimal(in.Price),
		Stock:       format.SafeParseInt(in.Stock),
		MinStock:    format.SafeParseInt(in.MinStock),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if p.Name == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "el nombre es obligatorio")
	}
	if p.Price.IsNegative() || p.Stock < 0 || p.MinStock < 0 {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "precio y stock no pueden ser negativos")
	}
	if catID := strings.TrimSpace(in.CategoryID); catID != "" && catID != "todos" {
		id := entity.ID(catID)
		if _, ok := uc.state.Snapshot().Category(id); !ok {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, fmt.Sprintf("la categoría %s no existe", catID))
		}
		p.CategoryID = &id
	}
	return p, nil
}

// Save crea el producto si id está vacío; si no, actualiza el existente.
func (uc *ProductUseCase) Save(ctx context.Context, id entity.ID, in dto.ProductForm) (*entity.Product, error) {
	p, err := uc.FromForm(in)
	if err != nil {
		return nil, err
	}

	if id.IsZero() {
		created, err := uc.repo.Create(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("crear producto: %w", err)
		}
		uc.log.Info().Str("product_id", created.ID.String()).Str("nombre", created.Name).Msg("producto creado")
		state.ReloadAfter(ctx, uc.state, uc.log)
		return created, nil
	}

	if _, ok := uc.state.Snapshot().Product(id); !ok {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Update(ctx, id, p); err != nil {
		return nil, fmt.Errorf("actualizar producto %s: %w", id, err)
	}
	p.ID = id
	uc.log.Info().Str("product_id", id.String()).Msg("producto actualizado")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return p, nil
}

// Delete elimina el producto. Las ventas pasadas conservan su copia de nombre y precio.
func (uc *ProductUseCase) Delete(ctx context.Context, id entity.ID) error {
	if _, ok := uc.state.Snapshot().Product(id); !ok {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar producto %s: %w", id, err)
	}
	uc.log.Info().Str("product_id", id.String()).Msg("producto eliminado")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return nil
}
