package rest

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// ClientRepository implementa repository.ClientRepository sobre /clientes.
type ClientRepository struct {
	client *Client
}

// NewClientRepository crea el repositorio de clientes.
func NewClientRepository(client *Client) *ClientRepository {
	return &ClientRepository{client: client}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	raw, err := r.client.Get(ctx, collectionPath(repository.CollectionClients))
	if err != nil {
		return nil, err
	}
	var out []entity.Client
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) (*entity.Client, error) {
	body := *c
	body.ID = ""
	raw, err := r.client.Post(ctx, collectionPath(repository.CollectionClients), body)
	if err != nil {
		return nil, err
	}
	created := body
	if err := decode(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ClientRepository) Update(ctx context.Context, id entity.ID, c *entity.Client) error {
	body := *c
	body.ID = ""
	_, err := r.client.Patch(ctx, recordPath(repository.CollectionClients, id), body)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id entity.ID) error {
	return r.client.Delete(ctx, recordPath(repository.CollectionClients, id))
}
