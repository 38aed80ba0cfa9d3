package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/pagesdemo/app/controllers"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get(constants.HealthRoute, controllers.HandleHealth)
}
