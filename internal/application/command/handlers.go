package command

import (
	"context"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

// ── Payloads ──────────────────────────────────────────────────────────────────

// SaveRecord alta (ID vacío) o edición de un registro del catálogo.
type SaveRecord[F any] struct {
	ID   entity.ID
	Form F
}

// RecordID referencia a un registro existente.
type RecordID struct {
	ID entity.ID
}

// StockChange ajuste manual de stock.
type StockChange struct {
	ProductID entity.ID
	Operation inventory.Operation
	Quantity  int
}

// CartItem producto y cantidad a agregar (o quitar, ignorando Quantity).
type CartItem struct {
	ProductID entity.ID
	Quantity  int
}

// SaleRequest registro de la venta del carrito para un cliente.
type SaleRequest struct {
	ClientID entity.ID
}

// BackupFile contenido del archivo de respaldo a importar.
type BackupFile struct {
	Data []byte
}

// ResetRequest frase escrita por el operador.
type ResetRequest struct {
	Phrase string
}

// ── Puertos ───────────────────────────────────────────────────────────────────

// Catalog CRUD de una colección del catálogo.
type Catalog[F any, E any] interface {
	Save(ctx context.Context, id entity.ID, form F) (*E, error)
	Delete(ctx context.Context, id entity.ID) error
}

type StockAdjuster interface {
	Adjust(ctx context.Context, productID entity.ID, op inventory.Operation, qty int) (int, error)
}

type CartService interface {
	Add(productID entity.ID, qty int) error
	Remove(productID entity.ID) error
	Clear()
	Lines() []sales.CartLine
}

type SaleRegistrar interface {
	Register(ctx context.Context, clientID entity.ID) (*entity.Sale, error)
}

type SaleDeleter interface {
	Delete(ctx context.Context, id entity.ID) error
}

type BackupService interface {
	Import(ctx context.Context, data []byte) (*dto.ImportResponse, error)
	Reset(ctx context.Context, phrase string) error
}

// Services casos de uso que atienden los comandos. Los nil no se registran.
type Services struct {
	Products    Catalog[dto.ProductForm, entity.Product]
	Clients     Catalog[dto.ClientForm, entity.Client]
	Categories  Catalog[dto.CategoryForm, entity.Category]
	Stock       StockAdjuster
	Cart        CartService
	Sales       SaleRegistrar
	SaleDeleter SaleDeleter
	Backup      BackupService
	State       state.Provider
}

// Register llena la tabla del dispatcher con los handlers de cada servicio.
func Register(d *Dispatcher, s Services) {
	if s.Products != nil {
		d.Register(SaveProduct, saveHandler(s.Products))
		d.Register(DeleteProduct, deleteHandler(s.Products.Delete))
	}
	if s.Clients != nil {
		d.Register(SaveClient, saveHandler(s.Clients))
		d.Register(DeleteClient, deleteHandler(s.Clients.Delete))
	}
	if s.Categories != nil {
		d.Register(SaveCategory, saveHandler(s.Categories))
		d.Register(DeleteCategory, deleteHandler(s.Categories.Delete))
	}
	if s.Stock != nil {
		d.Register(AdjustStock, func(ctx context.Context, cmd Command) (any, error) {
			p, err := payload[StockChange](cmd)
			if err != nil {
				return nil, err
			}
			stock, err := s.Stock.Adjust(ctx, p.ProductID, p.Operation, p.Quantity)
			if err != nil {
				return nil, err
			}
			return &dto.StockAdjustmentResponse{ProductID: p.ProductID.String(), Stock: stock}, nil
		})
	}
	if s.Cart != nil {
		registerCart(d, s.Cart)
	}
	if s.Sales != nil {
		d.Register(RegisterSale, func(ctx context.Context, cmd Command) (any, error) {
			p, err := payload[SaleRequest](cmd)
			if err != nil {
				return nil, err
			}
			return s.Sales.Register(ctx, p.ClientID)
		})
	}
	if s.SaleDeleter != nil {
		d.Register(DeleteSale, deleteHandler(s.SaleDeleter.Delete))
	}
	if s.Backup != nil {
		d.Register(ImportBackup, func(ctx context.Context, cmd Command) (any, error) {
			p, err := payload[BackupFile](cmd)
			if err != nil {
				return nil, err
			}
			return s.Backup.Import(ctx, p.Data)
		})
		d.Register(ResetData, func(ctx context.Context, cmd Command) (any, error) {
			p, err := payload[ResetRequest](cmd)
			if err != nil {
				return nil, err
			}
			return nil, s.Backup.Reset(ctx, p.Phrase)
		})
	}
	if s.State != nil {
		d.Register(Reload, func(ctx context.Context, _ Command) (any, error) {
			return s.State.Reload(ctx)
		})
	}
}

func saveHandler[F any, E any](c Catalog[F, E]) Handler {
	return func(ctx context.Context, cmd Command) (any, error) {
		p, err := payload[SaveRecord[F]](cmd)
		if err != nil {
			return nil, err
		}
		return c.Save(ctx, p.ID, p.Form)
	}
}

func deleteHandler(del func(ctx context.Context, id entity.ID) error) Handler {
	return func(ctx context.Context, cmd Command) (any, error) {
		p, err := payload[RecordID](cmd)
		if err != nil {
			return nil, err
		}
		return nil, del(ctx, p.ID)
	}
}

// registerCart los comandos del carrito devuelven las líneas resultantes.
func registerCart(d *Dispatcher, cart CartService) {
	d.Register(AddToCart, func(_ context.Context, cmd Command) (any, error) {
		p, err := payload[CartItem](cmd)
		if err != nil {
			return nil, err
		}
		if err := cart.Add(p.ProductID, p.Quantity); err != nil {
			return nil, err
		}
		return cart.Lines(), nil
	})
	d.Register(RemoveFromCart, func(_ context.Context, cmd Command) (any, error) {
		p, err := payload[CartItem](cmd)
		if err != nil {
			return nil, err
		}
		if err := cart.Remove(p.ProductID); err != nil {
			return nil, err
		}
		return cart.Lines(), nil
	})
	d.Register(ClearCart, func(context.Context, Command) (any, error) {
		cart.Clear()
		return cart.Lines(), nil
	})
}
