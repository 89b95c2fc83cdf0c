package rest

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// SaleRepository implementa repository.SaleRepository sobre /ventas.
type SaleRepository struct {
	client *Client
}

// NewSaleRepository crea el repositorio de ventas.
func NewSaleRepository(client *Client) *SaleRepository {
	return &SaleRepository{client: client}
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

func (r *SaleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	raw, err := r.client.Get(ctx, collectionPath(repository.CollectionSales))
	if err != nil {
		return nil, err
	}
	var out []entity.Sale
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /ventas. A diferencia del resto, el id (VTA-xxxx) lo asigna el llamador.
func (r *SaleRepository) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	raw, err := r.client.Post(ctx, collectionPath(repository.CollectionSales), sale)
	if err != nil {
		return nil, err
	}
	created := *sale
	if err := decode(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SaleRepository) Delete(ctx context.Context, id entity.ID) error {
	return r.client.Delete(ctx, recordPath(repository.CollectionSales, id))
}
