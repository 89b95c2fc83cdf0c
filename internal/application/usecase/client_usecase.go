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

// ClientUseCase alta, edición y baja de clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	state state.Provider
	log   zerolog.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, st state.Provider, log zerolog.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, state: st, log: log}
}

// Save crea el cliente si id está vacío; si no, actualiza el existente.
func (uc *ClientUseCase) Save(ctx context.Context, id entity.ID, in dto.ClientForm) (*entity.Client, error) {
	c := &entity.Client{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if c.Name == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "el nombre es obligatorio")
	}

	if id.IsZero() {
		created, err := uc.repo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("crear cliente: %w", err)
		}
		uc.log.Info().Str("client_id", created.ID.String()).Msg("cliente creado")
		state.ReloadAfter(ctx, uc.state, uc.log)
		return created, nil
	}

	if _, ok := uc.state.Snapshot().Client(id); !ok {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Update(ctx, id, c); err != nil {
		return nil, fmt.Errorf("actualizar cliente %s: %w", id, err)
	}
	c.ID = id
	state.ReloadAfter(ctx, uc.state, uc.log)
	return c, nil
}

// Delete elimina el cliente. Sus ventas quedan con cliente "N/A".
func (uc *ClientUseCase) Delete(ctx context.Context, id entity.ID) error {
	if _, ok := uc.state.Snapshot().Client(id); !ok {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente %s: %w", id, err)
	}
	uc.log.Info().Str("client_id", id.String()).Msg("cliente eliminado")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return nil
}
