package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalogfile"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
)

type App struct {
	cfg        config.Config
	catalog    *catalogfile.Catalog
	httpServer httphandler.HTTPServer
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initCatalog loads the configured snapshot file, or falls back to the
// built-in seed catalog when none is configured.
func (app *App) initCatalog() {
	const op = "App.initCatalog"

	if app.cfg.CatalogFile == "" {
		app.catalog = catalogfile.Seed()
		slog.Info("using built-in seed catalog", "nProducts", app.catalog.Len())
		return
	}

	catalog, err := catalogfile.Load(app.cfg.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = catalog
}

func (app *App) initInboundAdapters() {
	pricing := domain.Pricing{
		TaxRate:          app.cfg.Pricing.TaxRate,
		FreeShippingOver: app.cfg.Pricing.FreeShippingOver,
		FlatShippingFee:  app.cfg.Pricing.FlatShippingFee,
	}

	catalogService := service.NewCatalogService(app.catalog)
	cartService := service.NewCartService(app.catalog, pricing)
	contentService := service.NewContentService(
		catalogfile.SeedServices(),
		catalogfile.SeedTestimonials(),
		catalogfile.SeedStore(),
	)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, catalogService)
	httphandler.RegisterCart(mux, cartService)
	httphandler.RegisterContent(mux, contentService, contentService)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
