package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/amazonia/internal/application/analytics"
	"github.com/jhoicas/amazonia/internal/application/backup"
	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/query"
	"github.com/jhoicas/amazonia/internal/application/report"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain/repository"
	"github.com/jhoicas/amazonia/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Query         *query.Service
	Commands      *command.Dispatcher
	Cart          *sales.CartUseCase
	InvoicePDF    *sales.InvoicePDFUseCase
	Journal       repository.IncompleteSaleRepository
	Replenishment *inventory.ReplenishmentUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ExportUC      *report.ExportUseCase
	BackupUC      *backup.UseCase
	JWT           config.JWTConfig
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.JWT)
	api.Post("/auth/login", authHandler.Login)

	// Rutas de la consola. Sin JWT_SECRET quedan abiertas (uso local).
	protected := api.Group("/")
	if deps.JWT.Enabled() {
		protected = api.Group("/", AuthMiddleware(deps.JWT.Secret))
	}

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Query, deps.Commands, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.AdjustStock)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.Query, deps.Commands, deps.Log)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Query, deps.Commands, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Inventory
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Query, deps.Replenishment)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)

	// Cart
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.Cart, deps.Commands, deps.Log)
	cart.Get("/", cartHandler.Get)
	cart.Post("/", cartHandler.Add)
	cart.Delete("/", cartHandler.Clear)
	cart.Delete("/:productId", cartHandler.Remove)

	// Sales (las rutas fijas antes que /:id)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Query, deps.Commands, deps.InvoicePDF, deps.Journal, deps.Log)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Register)
	salesGroup.Get("/incomplete", saleHandler.ListIncomplete)
	salesGroup.Post("/incomplete/:id/resolve", saleHandler.ResolveIncomplete)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.GetPDF)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reports (.xlsx)
	reports := protected.Group("/reports")
	exportHandler := NewExportHandler(deps.ExportUC, deps.Log)
	reports.Get("/products", exportHandler.Products)
	reports.Get("/clients", exportHandler.Clients)
	reports.Get("/sales", exportHandler.Sales)

	// Backup
	backupGroup := protected.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC, deps.Commands, deps.Log)
	backupGroup.Get("/", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Post("/reset", backupHandler.Reset)

	// State
	stateHandler := NewStateHandler(deps.Query, deps.Commands, deps.Log)
	protected.Get("/state", stateHandler.Get)
	protected.Post("/state/reload", stateHandler.Reload)
}
