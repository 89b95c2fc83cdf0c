package entity

import "github.com/shopspring/decimal"

// El backend guarda precios y totales como números JSON, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
