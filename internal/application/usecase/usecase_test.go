package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/application/usecase"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest/resttest"
)

type env struct {
	backend    *resttest.Backend
	store      *state.Store
	products   *usecase.ProductUseCase
	clients    *usecase.ClientUseCase
	categories *usecase.CategoryUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	b := resttest.New(t)
	b.Seed("categorias", entity.Category{ID: "1", Name: "Bebidas"}, entity.Category{ID: "2", Name: "Snacks"})
	b.Seed("productos",
		entity.Product{ID: "1", Name: "Café", Price: decimal.NewFromInt(12000), Stock: 5, CategoryID: entity.IDPtr("1")},
		entity.Product{ID: "2", Name: "Té", Price: decimal.NewFromInt(3000), Stock: 5, CategoryID: entity.IDPtr("1")},
	)
	b.Seed("clientes", entity.Client{ID: "1", Name: "Ana"})

	c := rest.NewClient(rest.Options{BaseURL: b.URL(), Logger: zerolog.Nop()})
	store := state.NewStore(state.Sources{
		Products:   rest.NewProductRepository(c),
		Clients:    rest.NewClientRepository(c),
		Sales:      rest.NewSaleRepository(c),
		Categories: rest.NewCategoryRepository(c),
		Metadata:   rest.NewMetadataRepository(c),
	}, zerolog.Nop())
	_, err := store.Reload(context.Background())
	require.NoError(t, err)
	b.ResetRequests()

	return &env{
		backend:    b,
		store:      store,
		products:   usecase.NewProductUseCase(rest.NewProductRepository(c), store, zerolog.Nop()),
		clients:    usecase.NewClientUseCase(rest.NewClientRepository(c), store, zerolog.Nop()),
		categories: usecase.NewCategoryUseCase(rest.NewCategoryRepository(c), store, zerolog.Nop()),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías: guarda de borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCategory_ConProductos_SinLlamadas(t *testing.T) {
	e := newEnv(t)

	err := e.categories.Delete(context.Background(), "1")

	var inUse *domain.CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 2, inUse.Count)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.Empty(t, e.backend.Requests())
}

func TestDeleteCategory_SinProductos_LlamaAlBackend(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.categories.Delete(context.Background(), "2"))

	assert.Equal(t, 1, e.backend.Count(http.MethodDelete, "/categorias/2"))
	_, ok := e.store.Snapshot().Category("2")
	assert.False(t, ok)
}

func TestSaveCategory(t *testing.T) {
	e := newEnv(t)

	_, err := e.categories.Save(context.Background(), "", dto.CategoryForm{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	created, err := e.categories.Save(context.Background(), "", dto.CategoryForm{Name: " Lácteos "})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", created.Name)
	assert.Len(t, e.store.Snapshot().Categories, 3)

	_, err = e.categories.Save(context.Background(), "2", dto.CategoryForm{Name: "Pasabocas"})
	require.NoError(t, err)
	assert.Equal(t, "Pasabocas", e.backend.Record("categorias", "2")["nombre"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveProduct_CreaConParseoTolerante(t *testing.T) {
	e := newEnv(t)

	p, err := e.products.Save(context.Background(), "", dto.ProductForm{
		Name: "  Miel  ", Price: "15000.50", Stock: "12 unidades", MinStock: "", CategoryID: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("3"), p.ID)

	rec := e.backend.Record("productos", "3")
	assert.Equal(t, "Miel", rec["nombre"])
	assert.Equal(t, 15000.5, rec["precio"])
	assert.Equal(t, float64(12), rec["stock"])
	assert.Equal(t, float64(0), rec["stockMinimo"])
	assert.Equal(t, float64(2), rec["categoriaId"], "la categoría viaja como número")
	assert.Len(t, e.store.Snapshot().Products, 3)
}

func TestSaveProduct_SinCategoria_ReferenciaNula(t *testing.T) {
	e := newEnv(t)
	_, err := e.products.Save(context.Background(), "1", dto.ProductForm{Name: "Café", Price: "12000", Stock: "5"})
	require.NoError(t, err)

	rec := e.backend.Record("productos", "1")
	v, present := rec["categoriaId"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestSaveProduct_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.products.Save(ctx, "", dto.ProductForm{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.products.Save(ctx, "", dto.ProductForm{Name: "X", Price: "-5"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.products.Save(ctx, "", dto.ProductForm{Name: "X", CategoryID: "77"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.products.Save(ctx, "99", dto.ProductForm{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.backend.Requests())
}

func TestDeleteProduct(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.products.Delete(context.Background(), "2"))
	assert.Nil(t, e.backend.Record("productos", "2"))
	assert.Equal(t, 1, e.store.Snapshot().ProductsInCategory("1"))

	assert.ErrorIs(t, e.products.Delete(context.Background(), "2"), domain.ErrNotFound)
}

func TestDeleteProduct_FallaBackend(t *testing.T) {
	e := newEnv(t)
	e.backend.Fail(http.MethodDelete, "/productos/1", http.StatusInternalServerError, 0)

	err := e.products.Delete(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, rest.IsBackendError(err))
	assert.False(t, domain.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveClient(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	c, err := e.clients.Save(ctx, "", dto.ClientForm{Name: " Luis ", Email: "luis@x.co ", Address: " Calle 1 "})
	require.NoError(t, err)
	rec := e.backend.Record("clientes", c.ID.String())
	assert.Equal(t, "Luis", rec["nombre"])
	assert.Equal(t, "luis@x.co", rec["email"])
	assert.Equal(t, "Calle 1", rec["direccion"])

	_, err = e.clients.Save(ctx, "1", dto.ClientForm{Name: "Ana María", Phone: "300"})
	require.NoError(t, err)
	got, _ := e.store.Snapshot().Client("1")
	assert.Equal(t, "Ana María", got.Name)

	_, err = e.clients.Save(ctx, "", dto.ClientForm{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, e.clients.Delete(ctx, "1"))
	assert.ErrorIs(t, e.clients.Delete(ctx, "1"), domain.ErrNotFound)
}
