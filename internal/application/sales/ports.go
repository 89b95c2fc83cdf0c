package sales

import (
	"context"

	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// InvoiceDocument datos que necesita el generador para la factura de una venta.
type InvoiceDocument struct {
	StoreName string
	Sale      entity.Sale
	Client    entity.Client
}

// InvoicePDFGenerator genera la representación en PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// Resultados del registro de venta reportados al observador.
const (
	OutcomeRegistered  = "registrada"
	OutcomeRejected    = "rechazada"
	OutcomeCompensated = "compensada"
	OutcomeIncomplete  = "incompleta"
)

// SaleObserver recibe el resultado de cada intento de registro (métricas).
type SaleObserver interface {
	ObserveSale(outcome, failedStep string)
}

type nopObserver struct{}

func (nopObserver) ObserveSale(string, string) {}
