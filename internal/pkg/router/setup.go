package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/config"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/pages"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers the page routes of table, then the JSON API
func InstallRouter(app *fiber.App, cfg *config.Config, table *pages.Table) {
	setup(app, NewHttpRouter(cfg, table), NewApiRouter(table))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
