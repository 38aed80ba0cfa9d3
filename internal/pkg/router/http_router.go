package router

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/pagesdemo/app/controllers"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/cache"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/config"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/middleware"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/pages"
)

type HttpRouter struct {
	table     *pages.Table
	pageCache fiber.Handler
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	h.registerPublicRoutes(app)
	h.registerPageRoutes(app)
}

func NewHttpRouter(cfg *config.Config, table *pages.Table) *HttpRouter {
	return &HttpRouter{
		table:     table,
		pageCache: middleware.PageCache(cfg.PageCacheTTL, cache.PageStorage()),
	}
}

// registerPageRoutes binds every route of the table to its view. Anything
// not in the table falls through to fiber's default 404.
func (h HttpRouter) registerPageRoutes(app *fiber.App) {
	for _, route := range h.table.Routes() {
		app.Get(route.Path,
			controllers.SetViewName(route.ViewName),
			h.pageCache,
			controllers.HandlePage(route.ViewName),
		)
		fiberlog.Debugf("[Router] GET %s -> view %q", route.Path, route.ViewName)
	}
	fiberlog.Infof("[Router] Registered %d page routes", h.table.Len())
}
