package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain"
)

type fakeGenerator struct{ got sales.InvoiceDocument }

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, doc sales.InvoiceDocument) ([]byte, error) {
	g.got = doc
	return []byte("%PDF-1.3"), nil
}

func TestInvoicePDF_Generate(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t)
	_, err := f.register.Register(context.Background(), "1")
	require.NoError(t, err)

	gen := &fakeGenerator{}
	uc := sales.NewInvoicePDFUseCase(f.store, gen, "Amazonía")

	pdf, name, err := uc.Generate(context.Background(), "VTA-0007")
	require.NoError(t, err)
	assert.Equal(t, "Factura-VTA-0007.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "Ana", gen.got.Client.Name)
	assert.Equal(t, "Amazonía", gen.got.StoreName)
	assert.Len(t, gen.got.Sale.Items, 2)

	_, _, err = uc.Generate(context.Background(), "VTA-0099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
