package dto

import "time"

// StateResponse conteos del snapshot vigente (GET /api/state).
type StateResponse struct {
	Products    int       `json:"productos"`
	Clients     int       `json:"clientes"`
	Sales       int       `json:"ventas"`
	Categories  int       `json:"categorias"`
	LastInvoice int       `json:"ultima_factura"`
	LoadedAt    time.Time `json:"cargado_en"`
}
