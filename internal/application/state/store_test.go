package state_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest/resttest"
)

func newStore(t *testing.T) (*resttest.Backend, *state.Store) {
	t.Helper()
	b := resttest.New(t)
	c := rest.NewClient(rest.Options{BaseURL: b.URL(), Logger: zerolog.Nop()})
	return b, state.NewStore(state.Sources{
		Products:   rest.NewProductRepository(c),
		Clients:    rest.NewClientRepository(c),
		Sales:      rest.NewSaleRepository(c),
		Categories: rest.NewCategoryRepository(c),
		Metadata:   rest.NewMetadataRepository(c),
	}, zerolog.Nop())
}

func TestStore_Reload_CargaTodasLasColecciones(t *testing.T) {
	b, store := newStore(t)
	b.Seed("productos",
		entity.Product{ID: "1", Name: "Café", Price: decimal.NewFromInt(12000), Stock: 5, CategoryID: entity.IDPtr("1")},
		entity.Product{ID: "2", Name: "Té", Price: decimal.NewFromInt(3000), Stock: 1},
	)
	b.Seed("clientes", entity.Client{ID: "1", Name: "Ana"})
	b.Seed("categorias", entity.Category{ID: "1", Name: "Bebidas"})
	b.SetLastInvoice(9)

	assert.Empty(t, store.Snapshot().Products, "arranca vacío")

	snap, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, store.Snapshot())
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Clients, 1)
	assert.Empty(t, snap.Sales)
	assert.Equal(t, 9, snap.Metadata.LastInvoice)
	assert.False(t, snap.LoadedAt.IsZero())

	p, ok := snap.Product("1")
	require.True(t, ok)
	assert.Equal(t, "Bebidas", snap.CategoryName(p))
	assert.Equal(t, 1, snap.ProductsInCategory("1"))
	assert.Equal(t, "Ana", snap.ClientName("1"))
	assert.Equal(t, "N/A", snap.ClientName("77"))
	assert.Equal(t, 5, b.Count(http.MethodGet, "/"), "cinco GET por recarga")
}

func TestStore_Reload_FallaConservaSnapshotAnterior(t *testing.T) {
	b, store := newStore(t)
	b.Seed("productos", entity.Product{ID: "1", Name: "Café", Stock: 5})
	first, err := store.Reload(context.Background())
	require.NoError(t, err)

	b.Seed("productos", entity.Product{ID: "2", Name: "Té", Stock: 1})
	b.Fail(http.MethodGet, "/ventas", http.StatusInternalServerError, 1)

	got, err := store.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cargar ventas")
	assert.Same(t, first, got)
	assert.Same(t, first, store.Snapshot())
	assert.Len(t, store.Snapshot().Products, 1, "no hay reemplazo parcial")

	_, err = store.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, store.Snapshot().Products, 2)
	assert.Len(t, first.Products, 1, "el snapshot viejo no cambia")
}
