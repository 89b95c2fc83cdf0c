package rest

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre /productos.
type ProductRepository struct {
	client *Client
}

// NewProductRepository crea el repositorio de productos.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// List GET /productos.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	raw, err := r.client.Get(ctx, collectionPath(repository.CollectionProducts))
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /productos. El id lo asigna el backend.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	body := *product
	body.ID = ""
	raw, err := r.client.Post(ctx, collectionPath(repository.CollectionProducts), body)
	if err != nil {
		return nil, err
	}
	created := body
	if err := decode(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update PATCH /productos/{id} con todos los campos editables.
func (r *ProductRepository) Update(ctx context.Context, id entity.ID, product *entity.Product) error {
	body := *product
	body.ID = ""
	_, err := r.client.Patch(ctx, recordPath(repository.CollectionProducts, id), body)
	return err
}

// UpdateStock PATCH /productos/{id} {stock: n}.
func (r *ProductRepository) UpdateStock(ctx context.Context, id entity.ID, stock int) error {
	_, err := r.client.Patch(ctx, recordPath(repository.CollectionProducts, id), map[string]int{"stock": stock})
	return err
}

// Delete DELETE /productos/{id}.
func (r *ProductRepository) Delete(ctx context.Context, id entity.ID) error {
	return r.client.Delete(ctx, recordPath(repository.CollectionProducts, id))
}
