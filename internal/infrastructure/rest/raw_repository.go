package rest

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// RawRepository reenvía registros sin tipar (restauración de copias de seguridad).
type RawRepository struct {
	client *Client
}

// NewRawRepository crea el repositorio sin tipar.
func NewRawRepository(client *Client) *RawRepository {
	return &RawRepository{client: client}
}

var _ repository.RawRepository = (*RawRepository)(nil)

// CreateRaw POST /{colección} con el registro tal cual viene en el archivo.
func (r *RawRepository) CreateRaw(ctx context.Context, collection repository.Collection, record json.RawMessage) error {
	_, err := r.client.Post(ctx, collectionPath(collection), record)
	return err
}

func (r *RawRepository) Delete(ctx context.Context, collection repository.Collection, id entity.ID) error {
	return r.client.Delete(ctx, recordPath(collection, id))
}

// UpdateMetadataRaw PATCH /metadata con el objeto del archivo.
func (r *RawRepository) UpdateMetadataRaw(ctx context.Context, metadata json.RawMessage) error {
	_, err := r.client.Patch(ctx, metadataPath, metadata)
	return err
}
