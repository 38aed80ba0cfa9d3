package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/ManuelReschke/pagesdemo/internal/api/v1"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/pages"
)

// Per client IP. The API is read-only, so the budget is generous.
const (
	apiRateLimitMax    = 120
	apiRateLimitWindow = time.Minute
)

type ApiRouter struct {
	table *pages.Table
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.ApiRoute, limiter.New(limiter.Config{
		Max:        apiRateLimitMax,
		Expiration: apiRateLimitWindow,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(h.table)
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter(table *pages.Table) *ApiRouter {
	return &ApiRouter{table: table}
}
