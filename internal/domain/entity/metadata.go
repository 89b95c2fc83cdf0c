package entity

// Metadata registro único con el último consecutivo de factura usado.
type Metadata struct {
	LastInvoice int `json:"ultimaFactura"`
}

// NextInvoice consecutivo que tomará la próxima venta.
func (m Metadata) NextInvoice() int {
	return m.LastInvoice + 1
}
