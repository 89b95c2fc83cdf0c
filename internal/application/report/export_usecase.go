// Package report genera los reportes descargables (hojas de cálculo) de
// productos, clientes y ventas.
package report

import (
	"fmt"
	"strings"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/pkg/format"
)

// Sheet una hoja con encabezados y filas de celdas.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// SpreadsheetWriter serializa una hoja a un libro (xlsx).
type SpreadsheetWriter interface {
	Write(sheet Sheet) ([]byte, error)
}

// Nombres de archivo de los reportes.
const (
	ProductsFilename = "ReporteProductos.xlsx"
	ClientsFilename  = "ReporteClientes.xlsx"
	SalesFilename    = "ReporteVentas.xlsx"
)

// ExportUseCase arma los reportes desde el snapshot vigente.
type ExportUseCase struct {
	state  state.Provider
	writer SpreadsheetWriter
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(st state.Provider, writer SpreadsheetWriter) *ExportUseCase {
	return &ExportUseCase{state: st, writer: writer}
}

// ExportProducts hoja "Productos" con una fila por producto.
func (uc *ExportUseCase) ExportProducts() ([]byte, string, error) {
	snap := uc.state.Snapshot()
	if len(snap.Products) == 0 {
		return nil, "", domain.ErrNothingToExport
	}
	sheet := Sheet{
		Name:    "Productos",
		Headers: []string{"ID", "Nombre", "Descripción", "Precio", "Stock", "Stock Mínimo", "Categoría", "Imagen"},
	}
	for _, p := range snap.Products {
		sheet.Rows = append(sheet.Rows, []any{
			p.ID.String(), p.Name, p.Description, p.Price.InexactFloat64(),
			p.Stock, p.MinStock, snap.CategoryName(p), p.ImageURL,
		})
	}
	return uc.write(sheet, ProductsFilename)
}

// ExportClients hoja "Clientes" con una fila por cliente.
func (uc *ExportUseCase) ExportClients() ([]byte, string, error) {
	snap := uc.state.Snapshot()
	if len(snap.Clients) == 0 {
		return nil, "", domain.ErrNothingToExport
	}
	sheet := Sheet{
		Name:    "Clientes",
		Headers: []string{"ID", "Nombre", "Email", "Teléfono", "Dirección"},
	}
	for _, c := range snap.Clients {
		sheet.Rows = append(sheet.Rows, []any{c.ID.String(), c.Name, c.Email, c.Phone, c.Address})
	}
	return uc.write(sheet, ClientsFilename)
}

// ExportSales hoja "Ventas": una fila por venta con los productos aplanados.
func (uc *ExportUseCase) ExportSales() ([]byte, string, error) {
	snap := uc.state.Snapshot()
	if len(snap.Sales) == 0 {
		return nil, "", domain.ErrNothingToExport
	}
	sheet := Sheet{
		Name:    "Ventas",
		Headers: []string{"ID Venta", "Fecha", "Cliente", "Total", "Productos"},
	}
	for _, v := range snap.Sales {
		sheet.Rows = append(sheet.Rows, []any{
			v.ID.String(),
			format.FormatDate(v.Date),
			snap.ClientName(v.ClientID),
			v.Total.InexactFloat64(),
			ItemsSummary(v.Items),
		})
	}
	return uc.write(sheet, SalesFilename)
}

// ItemsSummary "2x Café, 1x Té".
func ItemsSummary(items []entity.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}

func (uc *ExportUseCase) write(sheet Sheet, filename string) ([]byte, string, error) {
	data, err := uc.writer.Write(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("reporte %s: %w", sheet.Name, err)
	}
	return data, filename, nil
}
