package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/bootstrap"
	"github.com/jhoicas/amazonia/internal/domain/repository"
	"github.com/jhoicas/amazonia/internal/infrastructure/memory"
	"github.com/jhoicas/amazonia/internal/infrastructure/metrics"
	"github.com/jhoicas/amazonia/internal/infrastructure/postgres"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/amazonia/internal/interfaces/http"
	"github.com/jhoicas/amazonia/pkg/config"
	"github.com/jhoicas/amazonia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api_url", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Diario de ventas incompletas: PostgreSQL si está configurado, si no en memoria.
	var journal repository.IncompleteSaleRepository = memory.NewIncompleteSaleRepository()
	if cfg.DB.Enabled() {
		pgJournal, closePool, err := postgres.OpenJournal(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("diario de ventas en PostgreSQL")
		}
		defer closePool()
		journal = pgJournal
		log.Info().Msg("diario de ventas incompletas en PostgreSQL")
	}

	var (
		reqObserver  rest.RequestObserver
		saleObserver sales.SaleObserver
		m            *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		m = metrics.New("amazonia")
		reqObserver, saleObserver = m, m
	}

	client := rest.NewClient(rest.Options{
		BaseURL:  cfg.Backend.BaseURL,
		Timeout:  cfg.Backend.Timeout,
		Logger:   log.Component("rest"),
		Observer: reqObserver,
	})

	app := bootstrap.New(bootstrap.Options{
		Client:    client,
		Journal:   journal,
		Observer:  saleObserver,
		ImageBase: cfg.App.ImageBasePath,
		StoreName: cfg.App.StoreName,
		Log:       log.Zerolog(),
	})

	// Carga inicial. Si el backend no responde la consola arranca vacía y se
	// puede reintentar con POST /api/state/reload.
	if snap, err := app.Store.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("carga inicial de datos")
	} else {
		log.Info().
			Int("productos", len(snap.Products)).
			Int("clientes", len(snap.Clients)).
			Int("ventas", len(snap.Sales)).
			Msg("datos cargados")
	}

	server := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 << 20,
	})
	server.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	server.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Amazonía API",
	}))

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if m != nil {
		server.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	httpRouter.Router(server, app.RouterDeps(cfg.JWT, log.Component("http")))
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: la consola no requiere autenticación")
	}

	go func() {
		if err := server.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
