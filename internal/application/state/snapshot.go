package state

import (
	"time"

	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// Snapshot copia inmutable de todas las colecciones del backend en un instante.
// Nunca se modifica en sitio: cada recarga produce un Snapshot nuevo.
type Snapshot struct {
	Products   []entity.Product
	Clients    []entity.Client
	Sales      []entity.Sale
	Categories []entity.Category
	Metadata   entity.Metadata
	LoadedAt   time.Time
}

func (s *Snapshot) Product(id entity.ID) (entity.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *Snapshot) Client(id entity.ID) (entity.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

func (s *Snapshot) Category(id entity.ID) (entity.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

func (s *Snapshot) Sale(id entity.ID) (entity.Sale, bool) {
	for _, v := range s.Sales {
		if v.ID == id {
			return v, true
		}
	}
	return entity.Sale{}, false
}

// ProductsInCategory cuántos productos referencian la categoría.
func (s *Snapshot) ProductsInCategory(id entity.ID) int {
	n := 0
	for _, p := range s.Products {
		if p.InCategory(id) {
			n++
		}
	}
	return n
}

// ClientName nombre del cliente o "N/A" si ya no existe.
func (s *Snapshot) ClientName(id entity.ID) string {
	if c, ok := s.Client(id); ok {
		return c.Name
	}
	return "N/A"
}

// CategoryName nombre de la categoría del producto o "N/A".
func (s *Snapshot) CategoryName(p entity.Product) string {
	if p.CategoryID == nil {
		return "N/A"
	}
	if c, ok := s.Category(*p.CategoryID); ok {
		return c.Name
	}
	return "N/A"
}
