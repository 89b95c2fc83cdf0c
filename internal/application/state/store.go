// Package state mantiene la copia local de los datos del backend que consultan
// las vistas y los casos de uso.
package state

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// Provider acceso al snapshot vigente y a su recarga. Lo consumen los casos de uso.
type Provider interface {
	Snapshot() *Snapshot
	Reload(ctx context.Context) (*Snapshot, error)
}

// Sources repositorios de los que se arma cada snapshot.
type Sources struct {
	Products   repository.ProductRepository
	Clients    repository.ClientRepository
	Sales      repository.SaleRepository
	Categories repository.CategoryRepository
	Metadata   repository.MetadataRepository
}

// Store dueño único del estado de la aplicación. Las lecturas son libres de
// bloqueo; una recarga reemplaza el snapshot completo o no lo toca.
type Store struct {
	src     Sources
	current atomic.Pointer[Snapshot]
	log     zerolog.Logger
	now     func() time.Time
}

// NewStore crea el store con un snapshot vacío.
func NewStore(src Sources, log zerolog.Logger) *Store {
	s := &Store{src: src, log: log, now: time.Now}
	s.current.Store(&Snapshot{})
	return s
}

var _ Provider = (*Store)(nil)

// Snapshot devuelve el snapshot vigente. No debe modificarse.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload pide las cinco colecciones en paralelo. Si alguna falla se conserva el
// snapshot anterior y se devuelve el primer error.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	var (
		products   []entity.Product
		clients    []entity.Client
		sales      []entity.Sale
		categories []entity.Category
		metadata   *entity.Metadata
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.src.Products.List(gctx)
		return wrap("productos", err)
	})
	g.Go(func() (err error) {
		clients, err = s.src.Clients.List(gctx)
		return wrap("clientes", err)
	})
	g.Go(func() (err error) {
		sales, err = s.src.Sales.List(gctx)
		return wrap("ventas", err)
	})
	g.Go(func() (err error) {
		categories, err = s.src.Categories.List(gctx)
		return wrap("categorias", err)
	})
	g.Go(func() (err error) {
		metadata, err = s.src.Metadata.Get(gctx)
		return wrap("metadata", err)
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("no se pudieron cargar los datos; se conserva el estado anterior")
		return s.Snapshot(), err
	}

	snap := &Snapshot{
		Products:   products,
		Clients:    clients,
		Sales:      sales,
		Categories: categories,
		LoadedAt:   s.now(),
	}
	if metadata != nil {
		snap.Metadata = *metadata
	}
	s.current.Store(snap)
	s.log.Debug().
		Int("productos", len(products)).Int("clientes", len(clients)).
		Int("ventas", len(sales)).Int("categorias", len(categories)).
		Int("ultima_factura", snap.Metadata.LastInvoice).
		Msg("datos recargados")
	return snap, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cargar %s: %w", what, err)
}

// ReloadAfter recarga tras una mutación ya confirmada. Un fallo aquí no invalida la
// mutación: se registra y el snapshot queda desactualizado hasta la próxima recarga.
func ReloadAfter(ctx context.Context, p Provider, log zerolog.Logger) {
	if _, err := p.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("mutación aplicada pero la recarga falló")
	}
}
