package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/viewmodel"
)

// HandlePage returns a handler that renders the given view inside the main
// layout. The view name is echoed in a response header so clients can see
// what the route resolved to.
func HandlePage(viewName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(constants.ViewNameHeader, viewName)
		return c.Render(viewName, viewmodel.NewPage(viewName), constants.PageLayout)
	}
}

// SetViewName sets the view name header ahead of the page cache, which
// answers hits without reaching HandlePage.
func SetViewName(viewName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(constants.ViewNameHeader, viewName)
		return c.Next()
	}
}
