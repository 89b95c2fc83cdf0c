package query

import (
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// Service listados de la consola. Solo lee el snapshot; nunca llama al backend.
type Service struct {
	state     state.Provider
	imageBase string
}

// NewService construye el servicio de consultas. imageBase es el prefijo de las
// imágenes con ruta relativa.
func NewService(st state.Provider, imageBase string) *Service {
	return &Service{state: st, imageBase: imageBase}
}

// Products página de productos filtrada por nombre y categoría.
func (s *Service) Products(f dto.ProductFilter) dto.ProductListResponse {
	snap := s.state.Snapshot()
	page, meta := Paginate(FilterProducts(snap.Products, f.Search, f.CategoryID), f.Page, ProductsPerPage)

	items := make([]dto.ProductResponse, 0, len(page))
	for _, p := range page {
		items = append(items, ToProductResponse(snap, p, s.imageBase))
	}
	return dto.ProductListResponse{Items: items, Page: meta}
}

// Product un producto por id.
func (s *Service) Product(id entity.ID) (dto.ProductResponse, error) {
	snap := s.state.Snapshot()
	p, ok := snap.Product(id)
	if !ok {
		return dto.ProductResponse{}, domain.ErrNotFound
	}
	return ToProductResponse(snap, p, s.imageBase), nil
}

// Clients página de clientes filtrada por nombre.
func (s *Service) Clients(f dto.ClientFilter) dto.ClientListResponse {
	page, meta := Paginate(FilterClients(s.state.Snapshot().Clients, f.Search), f.Page, ClientsPerPage)

	items := make([]dto.ClientResponse, 0, len(page))
	for _, c := range page {
		items = append(items, ToClientResponse(c))
	}
	return dto.ClientListResponse{Items: items, Page: meta}
}

// Categories todas las categorías con su conteo de productos.
func (s *Service) Categories() []dto.CategoryResponse {
	snap := s.state.Snapshot()
	out := make([]dto.CategoryResponse, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		out = append(out, ToCategoryResponse(snap, c))
	}
	return out
}

// Sales página de ventas, más recientes primero.
func (s *Service) Sales(page int) dto.SaleListResponse {
	snap := s.state.Snapshot()
	rows, meta := Paginate(SalesNewestFirst(snap.Sales), page, SalesPerPage)

	items := make([]dto.SaleResponse, 0, len(rows))
	for _, v := range rows {
		items = append(items, ToSaleResponse(snap, v))
	}
	return dto.SaleListResponse{Items: items, Page: meta}
}

// Sale una venta por id.
func (s *Service) Sale(id entity.ID) (dto.SaleResponse, error) {
	snap := s.state.Snapshot()
	v, ok := snap.Sale(id)
	if !ok {
		return dto.SaleResponse{}, domain.ErrNotFound
	}
	return ToSaleResponse(snap, v), nil
}

// Inventory vista de inventario filtrada por estado (todos | ok | bajo).
func (s *Service) Inventory(f dto.InventoryFilter) []dto.InventoryItemDTO {
	products := FilterInventory(s.state.Snapshot().Products, f.Status)
	out := make([]dto.InventoryItemDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.InventoryItemDTO{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			Status:    inventory.StatusOf(p),
		})
	}
	return out
}

// ProductView producto recién guardado con las etiquetas del listado.
func (s *Service) ProductView(p entity.Product) dto.ProductResponse {
	return ToProductResponse(s.state.Snapshot(), p, s.imageBase)
}

// SaleView venta recién registrada con el nombre del cliente y la fecha corta.
func (s *Service) SaleView(v entity.Sale) dto.SaleResponse {
	return ToSaleResponse(s.state.Snapshot(), v)
}

// CategoryView categoría recién guardada con su conteo de productos.
func (s *Service) CategoryView(c entity.Category) dto.CategoryResponse {
	return ToCategoryResponse(s.state.Snapshot(), c)
}

// State resumen del snapshot vigente.
func (s *Service) State() dto.StateResponse {
	snap := s.state.Snapshot()
	return dto.StateResponse{
		Products:    len(snap.Products),
		Clients:     len(snap.Clients),
		Sales:       len(snap.Sales),
		Categories:  len(snap.Categories),
		LastInvoice: snap.Metadata.LastInvoice,
		LoadedAt:    snap.LoadedAt,
	}
}
