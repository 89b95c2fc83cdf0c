package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleIDPrefix prefijo fijo del número de factura.
const SaleIDPrefix = "VTA-"

// FormatSaleID arma el id de la venta a partir del consecutivo: 7 → "VTA-0007".
// Números de más de 4 dígitos no se truncan: 12345 → "VTA-12345".
func FormatSaleID(n int) ID {
	return ID(fmt.Sprintf("%s%04d", SaleIDPrefix, n))
}

// SaleItem copia inmutable del producto al momento de la venta.
type SaleItem struct {
	ProductID ID              `json:"id"`
	Name      string          `json:"nombre"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  int             `json:"cantidad"`
}

// Subtotal precio * cantidad.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una venta registrada (/ventas).
type Sale struct {
	ID       ID              `json:"id"`
	ClientID ID              `json:"clienteId"`
	Items    []SaleItem      `json:"productosVendidos"`
	Total    decimal.Decimal `json:"total"`
	Date     time.Time       `json:"fecha"`
}

// ItemsTotal suma los subtotales de las líneas.
func (s Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Units total de unidades vendidas.
func (s Sale) Units() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
