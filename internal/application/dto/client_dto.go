package dto

// ClientForm campos del formulario de cliente.
type ClientForm struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

// ClientFilter filtros del listado de clientes.
type ClientFilter struct {
	Search string `query:"q"`
	Page   int    `query:"page"`
}

// ClientResponse cliente listo para mostrar (campos vacíos como "N/A").
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

// ClientListResponse página de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
