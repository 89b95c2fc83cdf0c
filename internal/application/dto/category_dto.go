package dto

// CategoryForm campos del formulario de categoría.
type CategoryForm struct {
	Name string `json:"nombre"`
}

// CategoryResponse categoría con la cantidad de productos que la usan.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nombre"`
	ProductCount int    `json:"productos"`
}
