// Package query arma las vistas de solo lectura de la consola (listados filtrados
// y paginados) a partir del snapshot vigente.
package query

import "github.com/jhoicas/amazonia/internal/application/dto"

// Tamaños de página por listado.
const (
	ProductsPerPage = 8
	ClientsPerPage  = 8
	SalesPerPage    = 10
)

// Paginate devuelve la porción de items de la página pedida (1-based).
// page < 1 se trata como 1; una página fuera de rango queda vacía.
func Paginate[T any](items []T, page, size int) ([]T, dto.PageResponse) {
	if page < 1 {
		page = 1
	}
	total := len(items)
	meta := dto.PageResponse{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		return []T{}, meta
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], meta
}
