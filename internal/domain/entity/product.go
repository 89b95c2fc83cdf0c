package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo tal como lo expone /productos.
// Stock es la existencia actual; MinStock el umbral de alerta de reposición.
type Product struct {
	ID          ID              `json:"id,omitempty"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"stockMinimo"`
	CategoryID  *ID             `json:"categoriaId"`
	ImageURL    string          `json:"imagenUrl,omitempty"`
}

// IsLowStock indica si la existencia está en o por debajo del mínimo.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// InCategory compara la referencia de categoría (nula nunca coincide).
func (p Product) InCategory(id ID) bool {
	return p.CategoryID != nil && *p.CategoryID == id
}
