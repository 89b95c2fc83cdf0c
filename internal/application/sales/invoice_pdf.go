package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// InvoicePDFUseCase genera la factura en PDF de una venta registrada.
type InvoicePDFUseCase struct {
	state     state.Provider
	generator InvoicePDFGenerator
	storeName string
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(st state.Provider, generator InvoicePDFGenerator, storeName string) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{state: st, generator: generator, storeName: storeName}
}

// InvoiceFilename nombre del archivo de la factura: Factura-VTA-0007.pdf.
func InvoiceFilename(saleID entity.ID) string {
	return fmt.Sprintf("Factura-%s.pdf", saleID)
}

// Generate devuelve el PDF y su nombre de archivo.
// Retorna domain.ErrNotFound si la venta o su cliente no están en la caché.
func (uc *InvoicePDFUseCase) Generate(ctx context.Context, saleID entity.ID) ([]byte, string, error) {
	snap := uc.state.Snapshot()
	sale, ok := snap.Sale(saleID)
	if !ok {
		return nil, "", fmt.Errorf("venta %s: %w", saleID, domain.ErrNotFound)
	}
	client, ok := snap.Client(sale.ClientID)
	if !ok {
		return nil, "", fmt.Errorf("cliente %s de la venta %s: %w", sale.ClientID, saleID, domain.ErrNotFound)
	}

	pdf, err := uc.generator.GenerateInvoicePDF(ctx, InvoiceDocument{
		StoreName: uc.storeName,
		Sale:      sale,
		Client:    client,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, InvoiceFilename(saleID), nil
}
