// Package bootstrap arma el grafo de casos de uso sobre un cliente del backend.
// Lo comparten el servidor HTTP, la herramienta de respaldo y los tests de integración.
package bootstrap

import (
	"sync"

	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/amazonia/internal/application/analytics"
	"github.com/jhoicas/amazonia/internal/application/backup"
	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/application/report"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/application/usecase"
	"github.com/jhoicas/amazonia/internal/domain/repository"
	"github.com/jhoicas/amazonia/internal/infrastructure/pdf"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	"github.com/jhoicas/amazonia/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/amazonia/internal/interfaces/http"
	"github.com/jhoicas/amazonia/pkg/config"
)

// Options piezas externas del grafo.
type Options struct {
	Client    *rest.Client
	Journal   repository.IncompleteSaleRepository
	Observer  sales.SaleObserver // nil = sin métricas de ventas
	ImageBase string
	StoreName string
	Log       zerolog.Logger
}

// App casos de uso listos para servir.
type App struct {
	Store         *state.Store
	Query         *query.Service
	Commands      *command.Dispatcher
	Cart          *sales.CartUseCase
	InvoicePDF    *sales.InvoicePDFUseCase
	Journal       repository.IncompleteSaleRepository
	Replenishment *inventory.ReplenishmentUseCase
	Dashboard     *appanalytics.DashboardUseCase
	Export        *report.ExportUseCase
	Backup        *backup.UseCase
}

// New construye el grafo. No llama al backend; el primer Reload queda a cargo del llamador.
func New(opts Options) *App {
	log := opts.Log
	productRepo := rest.NewProductRepository(opts.Client)
	clientRepo := rest.NewClientRepository(opts.Client)
	saleRepo := rest.NewSaleRepository(opts.Client)
	categoryRepo := rest.NewCategoryRepository(opts.Client)
	metadataRepo := rest.NewMetadataRepository(opts.Client)
	rawRepo := rest.NewRawRepository(opts.Client)

	store := state.NewStore(state.Sources{
		Products:   productRepo,
		Clients:    clientRepo,
		Sales:      saleRepo,
		Categories: categoryRepo,
		Metadata:   metadataRepo,
	}, log.With().Str("component", "state").Logger())

	cart := sales.NewCart()
	cartUC := sales.NewCartUseCase(cart, store)
	backupUC := backup.NewUseCase(rawRepo, metadataRepo, store, log.With().Str("component", "backup").Logger())

	// Venta y ajuste manual escriben stock absoluto calculado desde la caché.
	stockMu := &sync.Mutex{}

	dispatcher := command.NewDispatcher(log.With().Str("component", "commands").Logger())
	command.Register(dispatcher, command.Services{
		Products:    usecase.NewProductUseCase(productRepo, store, log),
		Clients:     usecase.NewClientUseCase(clientRepo, store, log),
		Categories:  usecase.NewCategoryUseCase(categoryRepo, store, log),
		Stock:       inventory.NewStockAdjustmentUseCase(productRepo, store, log).WithStockLock(stockMu),
		Cart:        cartUC,
		Sales: sales.NewRegisterSaleUseCase(cart, store, productRepo, saleRepo, metadataRepo, opts.Journal, opts.Observer,
			log.With().Str("component", "sales").Logger()).WithStockLock(stockMu),
		SaleDeleter: sales.NewDeleteSaleUseCase(saleRepo, store, log),
		Backup:      backupUC,
		State:       store,
	})

	return &App{
		Store:         store,
		Query:         query.NewService(store, opts.ImageBase),
		Commands:      dispatcher,
		Cart:          cartUC,
		InvoicePDF:    sales.NewInvoicePDFUseCase(store, pdf.NewMarotoPDFGenerator(), opts.StoreName),
		Journal:       opts.Journal,
		Replenishment: inventory.NewReplenishmentUseCase(store),
		Dashboard:     appanalytics.NewDashboardUseCase(store),
		Export:        report.NewExportUseCase(store, spreadsheet.NewExcelizeWriter()),
		Backup:        backupUC,
	}
}

// RouterDeps dependencias del router HTTP.
func (a *App) RouterDeps(jwt config.JWTConfig, log zerolog.Logger) httpRouter.RouterDeps {
	return httpRouter.RouterDeps{
		Query:         a.Query,
		Commands:      a.Commands,
		Cart:          a.Cart,
		InvoicePDF:    a.InvoicePDF,
		Journal:       a.Journal,
		Replenishment: a.Replenishment,
		DashboardUC:   a.Dashboard,
		ExportUC:      a.Export,
		BackupUC:      a.Backup,
		JWT:           jwt,
		Log:           log,
	}
}
