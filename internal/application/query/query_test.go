package query_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

type staticState struct{ snap *state.Snapshot }

func (s staticState) Snapshot() *state.Snapshot { return s.snap }
func (s staticState) Reload(context.Context) (*state.Snapshot, error) {
	return s.snap, nil
}

func catalog() *state.Snapshot {
	return &state.Snapshot{
		Categories: []entity.Category{{ID: "1", Name: "Bebidas"}, {ID: "2", Name: "Snacks"}},
		Products: []entity.Product{
			{ID: "1", Name: "Café de Origen", Price: decimal.NewFromInt(12000), Stock: 10, MinStock: 2, CategoryID: entity.IDPtr("1"), ImageURL: "cafe.png"},
			{ID: "2", Name: "TÉ VERDE", Price: decimal.NewFromInt(3500), Stock: 2, MinStock: 2, CategoryID: entity.IDPtr("1")},
			{ID: "3", Name: "Maní", Price: decimal.NewFromInt(2000), Stock: 0, MinStock: 1, CategoryID: entity.IDPtr("2")},
			{ID: "4", Name: "Cacao", Price: decimal.NewFromInt(9000), Stock: 8, MinStock: 1},
		},
		Clients: []entity.Client{
			{ID: "1", Name: "Ana Pérez", Email: "ana@example.com"},
			{ID: "2", Name: "Beto Ruiz"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPaginate(t *testing.T) {
	items := make([]int, 17)
	for i := range items {
		items[i] = i + 1
	}

	page, meta := query.Paginate(items, 1, 8)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, page)
	assert.Equal(t, dto.PageResponse{Page: 1, PageSize: 8, Total: 17, TotalPages: 3}, meta)

	page, meta = query.Paginate(items, 3, 8)
	assert.Equal(t, []int{17}, page)
	assert.Equal(t, 3, meta.Page)

	page, meta = query.Paginate(items, 0, 8)
	assert.Equal(t, 1, meta.Page, "página < 1 se trata como 1")
	assert.Len(t, page, 8)

	page, _ = query.Paginate(items, 9, 8)
	assert.Empty(t, page)

	page, meta = query.Paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPages)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterProducts(t *testing.T) {
	products := catalog().Products

	ids := func(ps []entity.Product) []entity.ID {
		out := make([]entity.ID, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []entity.ID{"1", "2", "3", "4"}, ids(query.FilterProducts(products, "", "todos")))
	assert.Equal(t, []entity.ID{"2"}, ids(query.FilterProducts(products, "té", "")))
	assert.Equal(t, []entity.ID{"1"}, ids(query.FilterProducts(products, "  CAFÉ ", "")))
	assert.Equal(t, []entity.ID{"1", "2"}, ids(query.FilterProducts(products, "", "1")))
	assert.Empty(t, query.FilterProducts(products, "maní", "1"))
	assert.Empty(t, query.FilterProducts(products, "", "99"))
}

func TestFilterClients(t *testing.T) {
	got := query.FilterClients(catalog().Clients, "pérez")
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Pérez", got[0].Name)
	assert.Len(t, query.FilterClients(catalog().Clients, ""), 2)
}

func TestFilterInventory(t *testing.T) {
	products := catalog().Products
	assert.Len(t, query.FilterInventory(products, "todos"), 4)
	assert.Len(t, query.FilterInventory(products, "OK"), 2)
	low := query.FilterInventory(products, "bajo")
	require.Len(t, low, 2)
	assert.Equal(t, entity.ID("2"), low[0].ID, "stock igual al mínimo cuenta como bajo")
}

func TestSalesNewestFirst_NoModificaOriginal(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []entity.Sale{
		{ID: "VTA-0001", Date: base},
		{ID: "VTA-0002", Date: base.Add(48 * time.Hour)},
		{ID: "VTA-0003", Date: base.Add(24 * time.Hour)},
	}

	got := query.SalesNewestFirst(in)

	assert.Equal(t, entity.ID("VTA-0002"), got[0].ID)
	assert.Equal(t, entity.ID("VTA-0003"), got[1].ID)
	assert.Equal(t, entity.ID("VTA-0001"), in[0].ID)
}

func TestImageSrc(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"cafe.png":                 "./img/cafe.png",
		"http://cdn.test/a.png":    "http://cdn.test/a.png",
		"https://cdn.test/a.png":   "https://cdn.test/a.png",
		"./assets/a.png":           "./assets/a.png",
		"/static/a.png":            "/static/a.png",
		"productos/cafe-grano.jpg": "./img/productos/cafe-grano.jpg",
	}
	for in, want := range cases {
		assert.Equal(t, want, query.ImageSrc("./img/", in), "entrada %q", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicio
// ──────────────────────────────────────────────────────────────────────────────

func TestService_Products(t *testing.T) {
	svc := query.NewService(staticState{catalog()}, "./img/")

	got := svc.Products(dto.ProductFilter{CategoryID: "1"})

	require.Len(t, got.Items, 2)
	first := got.Items[0]
	assert.Equal(t, "$\u00a012.000", first.PriceLabel)
	assert.Equal(t, "Bebidas", first.CategoryName)
	assert.Equal(t, "./img/cafe.png", first.ImageSrc)
	require.NotNil(t, first.CategoryID)
	assert.Equal(t, "1", *first.CategoryID)
	assert.True(t, got.Items[1].LowStock)

	all := svc.Products(dto.ProductFilter{})
	assert.Nil(t, all.Items[3].CategoryID)
	assert.Equal(t, "N/A", all.Items[3].CategoryName)
}

func TestService_ProductsPaginaDeOcho(t *testing.T) {
	snap := &state.Snapshot{}
	for i := 1; i <= 10; i++ {
		snap.Products = append(snap.Products, entity.Product{ID: entity.ID(fmt.Sprint(i)), Name: fmt.Sprintf("P%02d", i)})
	}
	svc := query.NewService(staticState{snap}, "")

	p2 := svc.Products(dto.ProductFilter{Page: 2})

	assert.Len(t, p2.Items, 2)
	assert.Equal(t, 2, p2.Page.TotalPages)
	assert.Equal(t, "P09", p2.Items[0].Name)
}

func TestService_ClientsConNA(t *testing.T) {
	svc := query.NewService(staticState{catalog()}, "")

	got := svc.Clients(dto.ClientFilter{Search: "beto"})

	require.Len(t, got.Items, 1)
	assert.Equal(t, dto.ClientResponse{ID: "2", Name: "Beto Ruiz", Email: "N/A", Phone: "N/A", Address: "N/A"}, got.Items[0])
}

func TestService_Categories(t *testing.T) {
	got := query.NewService(staticState{catalog()}, "").Categories()

	assert.Equal(t, []dto.CategoryResponse{
		{ID: "1", Name: "Bebidas", ProductCount: 2},
		{ID: "2", Name: "Snacks", ProductCount: 1},
	}, got)
}

func TestService_Sales(t *testing.T) {
	snap := catalog()
	snap.Sales = []entity.Sale{
		{ID: "VTA-0001", ClientID: "1", Total: decimal.NewFromInt(24000), Date: time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC),
			Items: []entity.SaleItem{{ProductID: "1", Name: "Café de Origen", Price: decimal.NewFromInt(12000), Quantity: 2}}},
		{ID: "VTA-0002", ClientID: "99", Total: decimal.NewFromInt(3500), Date: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)},
	}
	svc := query.NewService(staticState{snap}, "")

	got := svc.Sales(1)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "VTA-0002", got.Items[0].ID)
	assert.Equal(t, "N/A", got.Items[0].ClientName)
	assert.Equal(t, "Ana Pérez", got.Items[1].ClientName)
	assert.Equal(t, "09/03/2024", got.Items[1].DateLabel)
	assert.True(t, decimal.NewFromInt(24000).Equal(got.Items[1].Items[0].Subtotal))

	_, err := svc.Sale("VTA-0404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	one, err := svc.Sale("VTA-0001")
	require.NoError(t, err)
	assert.Equal(t, "$\u00a024.000", one.TotalLabel)
}

func TestService_Inventory(t *testing.T) {
	got := query.NewService(staticState{catalog()}, "").Inventory(dto.InventoryFilter{Status: "bajo"})

	require.Len(t, got, 2)
	assert.Equal(t, "Bajo", got[0].Status)
	assert.Equal(t, "Maní", got[1].Name)
}

func TestToCartResponse(t *testing.T) {
	got := query.ToCartResponse([]sales.CartLine{
		{ProductID: "1", Name: "Café", Price: decimal.NewFromInt(12000), Quantity: 2},
		{ProductID: "2", Name: "Té", Price: decimal.NewFromInt(3500), Quantity: 1},
	})

	require.Len(t, got.Lines, 2)
	assert.Equal(t, "$\u00a024.000", got.Lines[0].SubtotalLabel)
	assert.True(t, decimal.NewFromInt(27500).Equal(got.Total))
	assert.Equal(t, "$\u00a027.500", got.TotalLabel)

	empty := query.ToCartResponse(nil)
	assert.NotNil(t, empty.Lines)
	assert.Equal(t, "$\u00a00", empty.TotalLabel)
}

func TestToIncompleteSaleDTO(t *testing.T) {
	got := query.ToIncompleteSaleDTO(entity.IncompleteSale{
		ID:           "j-1",
		SaleID:       "VTA-0007",
		FailedStep:   entity.SaleStepCreate,
		PendingStock: []entity.StockRestore{{ProductID: "1", Stock: 10}},
	})

	assert.Equal(t, "VTA-0007", got.SaleID)
	assert.Equal(t, map[string]int{"1": 10}, got.PendingStock)
}
