package repository

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// Collection nombre del recurso REST de cada colección del backend.
type Collection string

const (
	CollectionProducts   Collection = "productos"
	CollectionClients    Collection = "clientes"
	CollectionSales      Collection = "ventas"
	CollectionCategories Collection = "categorias"
)

// Collections colecciones que se borran y recrean en import/reset.
var Collections = []Collection{CollectionProducts, CollectionClients, CollectionSales, CollectionCategories}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id entity.ID, product *entity.Product) error
	// UpdateStock escribe el valor absoluto de stock ({stock: n}).
	UpdateStock(ctx context.Context, id entity.ID, stock int) error
	Delete(ctx context.Context, id entity.ID) error
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)
	Update(ctx context.Context, id entity.ID, client *entity.Client) error
	Delete(ctx context.Context, id entity.ID) error
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, id entity.ID, category *entity.Category) error
	Delete(ctx context.Context, id entity.ID) error
}

// SaleRepository ventas: no se editan, solo se crean o eliminan.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	Delete(ctx context.Context, id entity.ID) error
}

// MetadataRepository registro singleton /metadata.
type MetadataRepository interface {
	Get(ctx context.Context) (*entity.Metadata, error)
	Update(ctx context.Context, fields map[string]any) error
	SetLastInvoice(ctx context.Context, n int) error
}

// RawRepository acceso sin tipar usado por la restauración de copias de seguridad:
// los registros del archivo se reenvían tal cual.
type RawRepository interface {
	CreateRaw(ctx context.Context, collection Collection, record json.RawMessage) error
	Delete(ctx context.Context, collection Collection, id entity.ID) error
	UpdateMetadataRaw(ctx context.Context, metadata json.RawMessage) error
}

// IncompleteSaleRepository diario de ventas incompletas pendientes de conciliación.
type IncompleteSaleRepository interface {
	Save(ctx context.Context, record *entity.IncompleteSale) error
	ListPending(ctx context.Context) ([]*entity.IncompleteSale, error)
	Resolve(ctx context.Context, id string) error
}
