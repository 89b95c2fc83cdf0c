package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/infrastructure/memory"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest/resttest"
)

type outcome struct{ result, step string }

type fakeObserver struct {
	mu   sync.Mutex
	seen []outcome
}

func (f *fakeObserver) ObserveSale(result, step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, outcome{result, step})
}

type fixture struct {
	backend  *resttest.Backend
	store    *state.Store
	cart     *sales.Cart
	carts    *sales.CartUseCase
	journal  *memory.IncompleteSaleRepository
	observer *fakeObserver
	register *sales.RegisterSaleUseCase
	deleter  *sales.DeleteSaleUseCase
	saleRepo *rest.SaleRepository
}

// newFixture backend con dos productos, un cliente y ultimaFactura = 6.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := resttest.New(t)
	b.Seed("productos",
		entity.Product{ID: "1", Name: "Café", Price: decimal.NewFromInt(12000), Stock: 10, MinStock: 2},
		entity.Product{ID: "2", Name: "Té", Price: decimal.NewFromInt(3500), Stock: 3, MinStock: 1},
	)
	b.Seed("clientes", entity.Client{ID: "1", Name: "Ana"})
	b.SetLastInvoice(6)

	c := rest.NewClient(rest.Options{BaseURL: b.URL(), Logger: zerolog.Nop()})
	products := rest.NewProductRepository(c)
	saleRepo := rest.NewSaleRepository(c)
	metadata := rest.NewMetadataRepository(c)
	store := state.NewStore(state.Sources{
		Products:   products,
		Clients:    rest.NewClientRepository(c),
		Sales:      saleRepo,
		Categories: rest.NewCategoryRepository(c),
		Metadata:   metadata,
	}, zerolog.Nop())
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	cart := sales.NewCart()
	journal := memory.NewIncompleteSaleRepository()
	obs := &fakeObserver{}
	f := &fixture{
		backend:  b,
		store:    store,
		cart:     cart,
		carts:    sales.NewCartUseCase(cart, store),
		journal:  journal,
		observer: obs,
		register: sales.NewRegisterSaleUseCase(cart, store, products, saleRepo, metadata, journal, obs, zerolog.Nop()),
		deleter:  sales.NewDeleteSaleUseCase(saleRepo, store, zerolog.Nop()),
		saleRepo: saleRepo,
	}
	b.ResetRequests()
	return f
}

func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	require.NoError(t, f.carts.Add("1", 2))
	require.NoError(t, f.carts.Add("2", 1))
}

func (f *fixture) stockOf(id string) float64 {
	return f.backend.Record("productos", id)["stock"].(float64)
}
