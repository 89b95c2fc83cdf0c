package entity

// Client representa un cliente (comprador) de la tienda.
type Client struct {
	ID      ID     `json:"id,omitempty"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}
