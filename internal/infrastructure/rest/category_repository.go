package rest

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// CategoryRepository implementa repository.CategoryRepository sobre /categorias.
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository crea el repositorio de categorías.
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	raw, err := r.client.Get(ctx, collectionPath(repository.CollectionCategories))
	if err != nil {
		return nil, err
	}
	var out []entity.Category
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	body := entity.Category{Name: c.Name}
	raw, err := r.client.Post(ctx, collectionPath(repository.CollectionCategories), body)
	if err != nil {
		return nil, err
	}
	created := body
	if err := decode(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id entity.ID, c *entity.Category) error {
	_, err := r.client.Patch(ctx, recordPath(repository.CollectionCategories, id), entity.Category{Name: c.Name})
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id entity.ID) error {
	return r.client.Delete(ctx, recordPath(repository.CollectionCategories, id))
}
