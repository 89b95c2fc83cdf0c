package query

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// AllCategories valor del selector que desactiva el filtro por categoría.
const AllCategories = "todos"

// Filtros de la vista de inventario.
const (
	InventoryAll = "todos"
	InventoryOK  = "ok"
	InventoryLow = "bajo"
)

// matcher compara sin distinguir mayúsculas (incluye tildes y ß vía case folding).
type matcher struct {
	term   string
	folder cases.Caser
}

func newMatcher(term string) *matcher {
	folder := cases.Fold()
	return &matcher{term: folder.String(strings.TrimSpace(term)), folder: folder}
}

func (m *matcher) match(s string) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(m.folder.String(s), m.term)
}

// FilterProducts productos cuyo nombre contiene search y que pertenecen a la
// categoría indicada ("todos" o vacío = cualquiera).
func FilterProducts(products []entity.Product, search, categoryID string) []entity.Product {
	m := newMatcher(search)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !m.match(p.Name) {
			continue
		}
		if categoryID != "" && categoryID != AllCategories && !p.InCategory(entity.ID(categoryID)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterClients clientes cuyo nombre contiene search.
func FilterClients(clients []entity.Client, search string) []entity.Client {
	m := newMatcher(search)
	out := make([]entity.Client, 0, len(clients))
	for _, c := range clients {
		if m.match(c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// FilterInventory "ok" deja los que superan el mínimo, "bajo" los que están en o
// bajo él; cualquier otro valor no filtra.
func FilterInventory(products []entity.Product, status string) []entity.Product {
	status = strings.ToLower(strings.TrimSpace(status))
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		switch status {
		case InventoryOK:
			if p.IsLowStock() {
				continue
			}
		case InventoryLow:
			if !p.IsLowStock() {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// SalesNewestFirst copia ordenada por fecha descendente (estable ante empates).
func SalesNewestFirst(sales []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(sales))
	copy(out, sales)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
