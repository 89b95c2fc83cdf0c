package query

import (
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/pkg/format"
)

const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// ToProductResponse producto con etiquetas de precio, categoría e imagen.
func ToProductResponse(snap *state.Snapshot, p entity.Product, imageBase string) dto.ProductResponse {
	var categoryID *string
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		categoryID = &id
	}
	return dto.ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PriceLabel:   format.FormatCOP(p.Price),
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		CategoryID:   categoryID,
		CategoryName: snap.CategoryName(p),
		ImageSrc:     ImageSrc(imageBase, p.ImageURL),
		LowStock:     p.IsLowStock(),
	}
}

// ToClientResponse cliente con los campos vacíos como "N/A".
func ToClientResponse(c entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Email:   orNA(c.Email),
		Phone:   orNA(c.Phone),
		Address: orNA(c.Address),
	}
}

// ToCategoryResponse categoría con el conteo de productos asociados.
func ToCategoryResponse(snap *state.Snapshot, c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		ProductCount: snap.ProductsInCategory(c.ID),
	}
}

// ToSaleResponse venta con nombre del cliente ("N/A" si ya no existe) y fecha corta.
func ToSaleResponse(snap *state.Snapshot, s entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ProductID: it.ProductID.String(),
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	return dto.SaleResponse{
		ID:         s.ID.String(),
		ClientID:   s.ClientID.String(),
		ClientName: snap.ClientName(s.ClientID),
		Items:      items,
		Total:      s.Total,
		TotalLabel: format.FormatCOP(s.Total),
		Date:       s.Date,
		DateLabel:  format.FormatDate(s.Date),
	}
}

// ToCartResponse líneas del carrito con subtotales y total.
func ToCartResponse(lines []sales.CartLine) dto.CartResponse {
	out := dto.CartResponse{Lines: make([]dto.CartLineDTO, 0, len(lines))}
	for _, l := range lines {
		sub := l.Subtotal()
		out.Lines = append(out.Lines, dto.CartLineDTO{
			ProductID:     l.ProductID.String(),
			Name:          l.Name,
			Price:         l.Price,
			Quantity:      l.Quantity,
			Subtotal:      sub,
			SubtotalLabel: format.FormatCOP(sub),
		})
		out.Total = out.Total.Add(sub)
	}
	out.TotalLabel = format.FormatCOP(out.Total)
	return out
}

// ToIncompleteSaleDTO marca del journal con el stock pendiente indexado por producto.
func ToIncompleteSaleDTO(m entity.IncompleteSale) dto.IncompleteSaleDTO {
	pending := make(map[string]int, len(m.PendingStock))
	for _, r := range m.PendingStock {
		pending[r.ProductID.String()] = r.Stock
	}
	return dto.IncompleteSaleDTO{
		ID:           m.ID,
		SaleID:       m.SaleID.String(),
		ClientID:     m.ClientID.String(),
		Invoice:      m.Invoice,
		Total:        m.Total,
		FailedStep:   m.FailedStep,
		Cause:        m.Cause,
		SaleCreated:  m.SaleCreated,
		PendingStock: pending,
		CreatedAt:    m.CreatedAt,
	}
}
