package dto

// ResetRequest body para POST /api/reset.
type ResetRequest struct {
	Phrase  string `json:"frase"`
	Confirm bool   `json:"confirm"`
}

// ImportResponse cantidad de registros restaurados por colección.
type ImportResponse struct {
	Products   int `json:"productos"`
	Clients    int `json:"clientes"`
	Sales      int `json:"ventas"`
	Categories int `json:"categorias"`
}
