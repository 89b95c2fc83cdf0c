package dto

import "github.com/shopspring/decimal"

// ProductForm campos del formulario de producto. Los numéricos llegan como texto y
// se interpretan de forma tolerante ("12abc" → 12, "" → 0).
type ProductForm struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Price       string `json:"precio"`
	Stock       string `json:"stock"`
	MinStock    string `json:"stock_minimo"`
	CategoryID  string `json:"categoria_id"`
	ImageURL    string `json:"imagen_url"`
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search     string `query:"q"`
	CategoryID string `query:"categoria"` // "todos" o vacío = sin filtro
	Page       int    `query:"page"`
}

// ProductResponse producto listo para mostrar.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Price        decimal.Decimal `json:"precio"`
	PriceLabel   string          `json:"precio_label"` // $ 12.000
	Stock        int             `json:"stock"`
	MinStock     int             `json:"stock_minimo"`
	CategoryID   *string         `json:"categoria_id"`
	CategoryName string          `json:"categoria"`
	ImageSrc     string          `json:"imagen_src,omitempty"`
	LowStock     bool            `json:"stock_bajo"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
