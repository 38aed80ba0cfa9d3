package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/cache"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/config"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/env"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/middleware"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/pages"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/router"
	"github.com/ManuelReschke/pagesdemo/views"
)

func main() {
	env.SetupEnvFile()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cache.SetupCache(cfg)
	defer cache.Close()

	app := NewApplication(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		log.Fatal(err)
	case <-ctx.Done():
		fiberlog.Infof("[Server] Shutting down (timeout %s)", cfg.ShutdownTimeout)
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			fiberlog.Errorf("[Server] Shutdown failed: %v", err)
		}
	}
}

func NewApplication(cfg *config.Config) *fiber.App {
	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/pages to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app; routes match the request path exactly
	app := fiber.New(fiber.Config{
		Views:         views.NewEngine(cfg.Dev),
		StrictRouting: true,
		CaseSensitive: true,
	})

	// recovery, request ids and logging
	app.Use(recover.New(), middleware.RequestID(), middleware.AccessLog())

	// fiber metrics
	if cfg.MetricsEnabled() {
		app.Get(constants.MetricsRoute, middleware.MetricsAuth(cfg.MetricsUser, cfg.MetricsPasswordHash), monitor.New())
	} else {
		fiberlog.Info("[Server] METRICS_PASSWORD_HASH not set, /metrics disabled")
	}

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: constants.DocsBasePath,
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     constants.DocsPath,
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, cfg, pages.Default())

	return app
}
