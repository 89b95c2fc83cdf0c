package rest

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// MetadataRepository implementa repository.MetadataRepository sobre /metadata.
type MetadataRepository struct {
	client *Client
}

// NewMetadataRepository crea el repositorio del registro de metadata.
func NewMetadataRepository(client *Client) *MetadataRepository {
	return &MetadataRepository{client: client}
}

var _ repository.MetadataRepository = (*MetadataRepository)(nil)

// Get GET /metadata. Sin cuerpo JSON se asume consecutivo 0.
func (r *MetadataRepository) Get(ctx context.Context) (*entity.Metadata, error) {
	raw, err := r.client.Get(ctx, metadataPath)
	if err != nil {
		return nil, err
	}
	var m entity.Metadata
	if err := decode(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Update PATCH /metadata con solo los campos indicados; el resto del registro se conserva.
func (r *MetadataRepository) Update(ctx context.Context, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.client.Patch(ctx, metadataPath, fields)
	return err
}

// SetLastInvoice PATCH /metadata {ultimaFactura: n}.
func (r *MetadataRepository) SetLastInvoice(ctx context.Context, n int) error {
	return r.Update(ctx, map[string]any{"ultimaFactura": n})
}
