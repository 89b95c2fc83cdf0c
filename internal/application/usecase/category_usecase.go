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
)

// CategoryUseCase alta, edición y baja de categorías.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	state state.Provider
	log   zerolog.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, st state.Provider, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, state: st, log: log}
}

// Save crea la categoría si id está vacío; si no, la renombra.
func (uc *CategoryUseCase) Save(ctx context.Context, id entity.ID, in dto.CategoryForm) (*entity.Category, error) {
	c := &entity.Category{Name: strings.TrimSpace(in.Name)}
	if c.Name == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "el nombre de la categoría no puede estar vacío")
	}

	if id.IsZero() {
		created, err := uc.repo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("crear categoría: %w", err)
		}
		state.ReloadAfter(ctx, uc.state, uc.log)
		return created, nil
	}

	if _, ok := uc.state.Snapshot().Category(id); !ok {
		return nil, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Update(ctx, id, c); err != nil {
		return nil, fmt.Errorf("actualizar categoría %s: %w", id, err)
	}
	c.ID = id
	state.ReloadAfter(ctx, uc.state, uc.log)
	return c, nil
}

// Delete elimina la categoría solo si ningún producto en caché la referencia.
// Con productos asociados devuelve *domain.CategoryInUseError sin llamar al backend.
// El chequeo es local: no evita que otro cliente asigne la categoría mientras tanto.
func (uc *CategoryUseCase) Delete(ctx context.Context, id entity.ID) error {
	snap := uc.state.Snapshot()
	if n := snap.ProductsInCategory(id); n > 0 {
		return &domain.CategoryInUseError{CategoryID: id.String(), Count: n}
	}
	if _, ok := snap.Category(id); !ok {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar categoría %s: %w", id, err)
	}
	uc.log.Info().Str("category_id", id.String()).Msg("categoría eliminada")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return nil
}
